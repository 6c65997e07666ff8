// Package store defines the patient directory and assessment record store
// contracts shared by the in-memory and postgres implementations, along with
// the error taxonomy surfaced to handlers.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gcs-tracker/internal/models"
)

var (
	// ErrNotFound is returned when an id lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownPatient is returned when an assessment references a patient
	// id that does not resolve via the directory.
	ErrUnknownPatient = errors.New("unknown patient")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
)

// Directory is the collection of patient records.
type Directory interface {
	Add(ctx context.Context, p models.Patient) (models.Patient, error)
	Update(ctx context.Context, id uint, upd models.PatientUpdate) (models.Patient, error)
	FindByID(ctx context.Context, id uint) (models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
	Search(ctx context.Context, term string) ([]models.Patient, error)
}

// RecordStore is the append-only collection of assessments.
type RecordStore interface {
	Append(ctx context.Context, patientID uint, in models.AssessmentInput) (models.Assessment, error)
	HistoryFor(ctx context.Context, patientID uint) ([]models.Assessment, error)
	LatestFor(ctx context.Context, patientID uint) (*models.Assessment, error)
}

// ValidatePatient checks the presence/range constraints applied on create
// and after every update merge.
func ValidatePatient(p models.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("%w: age must not be negative, got %d", ErrValidation, *p.Age)
	}
	return nil
}

// FilterPatients returns the patients whose name or detail text contains
// term, case-insensitively. An empty term matches everything.
func FilterPatients(patients []models.Patient, term string) []models.Patient {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return patients
	}
	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(detailText(p)), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func detailText(p models.Patient) string {
	parts := []string{p.Name, p.AdmissionDate}
	for _, f := range []*string{p.Gender, p.Department, p.BedNumber, p.MedicalHistory, p.Diagnosis} {
		if f != nil {
			parts = append(parts, *f)
		}
	}
	return strings.Join(parts, " ")
}

// Latest picks the assessment with the maximum timestamp, ties broken by
// highest id (the most recently appended). Returns nil for an empty history.
func Latest(history []models.Assessment) *models.Assessment {
	var latest *models.Assessment
	for i := range history {
		a := &history[i]
		if latest == nil ||
			a.Timestamp.After(latest.Timestamp) ||
			(a.Timestamp.Equal(latest.Timestamp) && a.ID > latest.ID) {
			latest = a
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}
