package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gcs-tracker/internal/models"
)

// NewPatientsCmd creates the patients command group.
func NewPatientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "list and manage the patient directory",
	}
	cmd.AddCommand(newPatientsListCmd(), newPatientsAddCmd())
	return cmd
}

func newPatientsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list patients, optionally filtered by a search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := newFallback(cmd)
			if err != nil {
				return err
			}

			term, _ := cmd.Flags().GetString("search")
			var patients []models.Patient
			if term != "" {
				patients, err = fb.Search(cmd.Context(), term)
			} else {
				patients, err = fb.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAGE\tGENDER\tDEPARTMENT\tBED\tADMITTED")
			for _, p := range patients {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, orDash(intStr(p.Age)), orDash(deref(p.Gender)),
					orDash(deref(p.Department)), orDash(deref(p.BedNumber)), p.AdmissionDate)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringP("search", "s", "", "case-insensitive substring filter")
	return cmd
}

func newPatientsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a patient to the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := newFallback(cmd)
			if err != nil {
				return err
			}

			p := models.Patient{}
			p.Name, _ = cmd.Flags().GetString("name")
			p.AdmissionDate, _ = cmd.Flags().GetString("admission-date")
			if cmd.Flags().Changed("age") {
				age, _ := cmd.Flags().GetInt("age")
				p.Age = &age
			}
			for flag, field := range map[string]**string{
				"gender":          &p.Gender,
				"department":      &p.Department,
				"bed":             &p.BedNumber,
				"medical-history": &p.MedicalHistory,
				"diagnosis":       &p.Diagnosis,
			} {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					*field = &v
				}
			}

			created, err := fb.Add(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Printf("created patient %d (%s)\n", created.ID, created.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "patient display name (required)")
	cmd.Flags().Int("age", 0, "age in years")
	cmd.Flags().String("gender", "", "male, female or other")
	cmd.Flags().String("department", "", "ward or department")
	cmd.Flags().String("bed", "", "bed number")
	cmd.Flags().String("medical-history", "", "relevant medical history")
	cmd.Flags().String("diagnosis", "", "admission diagnosis")
	cmd.Flags().String("admission-date", "", "admission date (YYYY-MM-DD, defaults to today)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intStr(i *int) string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%d", *i)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
