package memory

import (
	"context"
	"time"

	"gcs-tracker/internal/models"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// Seed loads a small demo dataset so the UI has something to show when the
// service runs without postgres.
func Seed(s *Store) {
	ctx := context.Background()

	type seedScore struct {
		day               string
		eye, verbal, motor int
		notes             string
	}
	seeds := []struct {
		patient models.Patient
		scores  []seedScore
	}{
		{
			patient: models.Patient{
				Name:           "John Doe",
				Age:            intptr(45),
				Gender:         strptr("male"),
				Department:     strptr("neurology"),
				BedNumber:      strptr("N-12"),
				MedicalHistory: strptr("Hypertension, Type 2 Diabetes"),
				Diagnosis:      strptr("Traumatic brain injury"),
				AdmissionDate:  "2025-05-01",
			},
			scores: []seedScore{
				{"2025-05-01", 2, 3, 4, "Initial assessment after admission"},
				{"2025-05-02", 3, 3, 5, "Improvement in responsiveness"},
				{"2025-05-03", 3, 4, 5, "Continued improvement"},
			},
		},
		{
			patient: models.Patient{
				Name:           "Jane Smith",
				Age:            intptr(32),
				Gender:         strptr("female"),
				Department:     strptr("emergency"),
				BedNumber:      strptr("E-05"),
				MedicalHistory: strptr("Head trauma from motor vehicle accident"),
				Diagnosis:      strptr("Subarachnoid hemorrhage"),
				AdmissionDate:  "2025-05-04",
			},
			scores: []seedScore{
				{"2025-05-04", 1, 2, 3, "Critical condition on admission"},
				{"2025-05-05", 2, 2, 4, "Slight improvement in motor response"},
			},
		},
		{
			patient: models.Patient{
				Name:           "Ahmad Rahimi",
				Age:            intptr(56),
				Gender:         strptr("male"),
				Department:     strptr("icu"),
				BedNumber:      strptr("ICU-03"),
				MedicalHistory: strptr("Cerebral hemorrhage"),
				Diagnosis:      strptr("Intracerebral hemorrhage"),
				AdmissionDate:  "2025-05-07",
			},
			scores: []seedScore{
				{"2025-05-07", 3, 4, 5, "Admitted with moderate impairment"},
			},
		},
	}

	for _, seed := range seeds {
		p, err := s.Add(ctx, seed.patient)
		if err != nil {
			continue
		}
		for _, sc := range seed.scores {
			ts, _ := time.Parse("2006-01-02", sc.day)
			ts = ts.Add(8*time.Hour + 30*time.Minute)
			notes := sc.notes
			_, _ = s.Append(ctx, p.ID, models.AssessmentInput{
				EyeScore:    sc.eye,
				VerbalScore: sc.verbal,
				MotorScore:  sc.motor,
				Notes:       &notes,
				Timestamp:   ts,
			})
		}
	}
}
