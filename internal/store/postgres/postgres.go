// Package postgres implements the directory and record store contracts on
// top of gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
	"gcs-tracker/internal/store"
)

const timeFormat = "2006-01-02 15:04:05"

// Store wraps a gorm handle. It is safe for concurrent use; per-row write
// ordering is delegated to postgres.
type Store struct {
	db *gorm.DB
}

// New returns a store backed by the given gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Add validates the patient and inserts it; the database assigns the id.
func (s *Store) Add(ctx context.Context, p models.Patient) (models.Patient, error) {
	if err := store.ValidatePatient(p); err != nil {
		return models.Patient{}, err
	}

	now := time.Now().Format(timeFormat)
	p.ID = 0 // never trust caller-supplied ids
	if p.AdmissionDate == "" {
		p.AdmissionDate = time.Now().Format("2006-01-02")
	}
	p.CreateTime = now
	p.UpdateTime = now

	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Patient{}, fmt.Errorf("insert patient: %w", err)
	}
	return p, nil
}

// Update merges the supplied fields over the existing record and saves it.
func (s *Store) Update(ctx context.Context, id uint, upd models.PatientUpdate) (models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Patient{}, fmt.Errorf("%w: patient %d", store.ErrNotFound, id)
		}
		return models.Patient{}, fmt.Errorf("find patient: %w", err)
	}

	upd.Apply(&p)
	if err := store.ValidatePatient(p); err != nil {
		return models.Patient{}, err
	}
	p.ID = id
	p.UpdateTime = time.Now().Format(timeFormat)

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

// FindByID looks a patient up by id.
func (s *Store) FindByID(ctx context.Context, id uint) (models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Patient{}, fmt.Errorf("%w: patient %d", store.ErrNotFound, id)
		}
		return models.Patient{}, fmt.Errorf("find patient: %w", err)
	}
	return p, nil
}

// List returns all patients in insertion (id) order.
func (s *Store) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Search filters the directory by case-insensitive substring match over name
// and detail text. The match runs in Go so it behaves exactly like the
// in-memory store.
func (s *Store) Search(ctx context.Context, term string) ([]models.Patient, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return store.FilterPatients(all, term), nil
}

// Append validates the component scores, recomputes the total and inserts a
// new assessment row. Existing rows are never touched.
func (s *Store) Append(ctx context.Context, patientID uint, in models.AssessmentInput) (models.Assessment, error) {
	total, err := gcs.ComputeTotal(in.EyeScore, in.VerbalScore, in.MotorScore)
	if err != nil {
		return models.Assessment{}, err
	}

	if _, err := s.FindByID(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Assessment{}, fmt.Errorf("%w: patient %d", store.ErrUnknownPatient, patientID)
		}
		return models.Assessment{}, err
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	a := models.Assessment{
		PatientID:   patientID,
		Timestamp:   ts,
		EyeScore:    in.EyeScore,
		VerbalScore: in.VerbalScore,
		MotorScore:  in.MotorScore,
		TotalScore:  total,
		Notes:       in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Assessment{}, fmt.Errorf("insert assessment: %w", err)
	}
	return a, nil
}

// HistoryFor returns the patient's assessments ordered by timestamp
// ascending, ties broken by id.
func (s *Store) HistoryFor(ctx context.Context, patientID uint) ([]models.Assessment, error) {
	var history []models.Assessment
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("timestamp ASC, id ASC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}

// LatestFor returns the newest assessment, or nil when the patient has no
// history.
func (s *Store) LatestFor(ctx context.Context, patientID uint) (*models.Assessment, error) {
	var a models.Assessment
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("timestamp DESC, id DESC").
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load latest assessment: %w", err)
	}
	return &a, nil
}
