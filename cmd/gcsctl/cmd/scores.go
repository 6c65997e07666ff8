package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
)

func patientIDArg(args []string) (uint, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one patient id argument")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid patient id %q", args[0])
	}
	return uint(id), nil
}

// NewScoreCmd creates the score command, which records one assessment.
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <patient-id>",
		Short: "record a GCS assessment for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}
			fb, err := newFallback(cmd)
			if err != nil {
				return err
			}

			eye, _ := cmd.Flags().GetInt("eye")
			verbal, _ := cmd.Flags().GetInt("verbal")
			motor, _ := cmd.Flags().GetInt("motor")
			in := models.AssessmentInput{
				EyeScore:    eye,
				VerbalScore: verbal,
				MotorScore:  motor,
			}
			if cmd.Flags().Changed("notes") {
				notes, _ := cmd.Flags().GetString("notes")
				in.Notes = &notes
			}

			a, err := fb.Append(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Printf("recorded assessment %d: E%dV%dM%d total=%d severity=%s\n",
				a.ID, a.EyeScore, a.VerbalScore, a.MotorScore,
				a.TotalScore, gcs.ClassifySeverity(a.TotalScore))
			return nil
		},
	}
	cmd.Flags().IntP("eye", "e", 0, "eye opening response (1-4)")
	cmd.Flags().IntP("verbal", "v", 0, "verbal response (1-5)")
	cmd.Flags().IntP("motor", "m", 0, "motor response (1-6)")
	cmd.Flags().StringP("notes", "n", "", "free-text notes")
	_ = cmd.MarkFlagRequired("eye")
	_ = cmd.MarkFlagRequired("verbal")
	_ = cmd.MarkFlagRequired("motor")
	return cmd
}

// NewHistoryCmd creates the history command, listing assessments
// chronologically.
func NewHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <patient-id>",
		Short: "show a patient's assessment history, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}
			fb, err := newFallback(cmd)
			if err != nil {
				return err
			}

			history, err := fb.HistoryFor(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Println("no assessments recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tEYE\tVERBAL\tMOTOR\tTOTAL\tSEVERITY\tNOTES")
			for _, a := range history {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
					a.Timestamp.Format("2006-01-02 15:04"),
					a.EyeScore, a.VerbalScore, a.MotorScore, a.TotalScore,
					gcs.ClassifySeverity(a.TotalScore), deref(a.Notes))
			}
			return w.Flush()
		},
	}
}

// NewLatestCmd creates the latest command, showing the newest assessment.
func NewLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest <patient-id>",
		Short: "show a patient's most recent assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}
			fb, err := newFallback(cmd)
			if err != nil {
				return err
			}

			latest, err := fb.LatestFor(cmd.Context(), id)
			if err != nil {
				return err
			}
			if latest == nil {
				fmt.Println("no assessments recorded")
				return nil
			}
			fmt.Printf("%s E%dV%dM%d total=%d severity=%s\n",
				latest.Timestamp.Format("2006-01-02 15:04"),
				latest.EyeScore, latest.VerbalScore, latest.MotorScore,
				latest.TotalScore, gcs.ClassifySeverity(latest.TotalScore))
			return nil
		},
	}
}
