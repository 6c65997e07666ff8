package main

import (
	"os"

	"gcs-tracker/cmd/gcsctl/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
