// Package memory provides the in-memory implementation of the patient
// directory and assessment record store. It backs the server when postgres
// is unreachable and the client when the remote API is unavailable.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
	"gcs-tracker/internal/store"
)

const timeFormat = "2006-01-02 15:04:05"

// Store holds patients and their assessments. All mutation goes through a
// single write lock, preserving the append-only ordering invariant when the
// store is shared.
type Store struct {
	mu          sync.RWMutex
	patients    map[uint]models.Patient
	order       []uint // patient ids in insertion order
	assessments map[uint][]models.Assessment

	// ID counters are monotonic and never reused, even after Clear, so
	// locally assigned ids cannot collide with each other across resets.
	nextPatientID    uint
	nextAssessmentID uint
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		patients:    make(map[uint]models.Patient),
		assessments: make(map[uint][]models.Assessment),
	}
}

// Add validates the patient, assigns a new unique id and stores it.
// No assessment history is created; assessments are looked up by join.
func (s *Store) Add(_ context.Context, p models.Patient) (models.Patient, error) {
	if err := store.ValidatePatient(p); err != nil {
		return models.Patient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Format(timeFormat)
	s.nextPatientID++
	p.ID = s.nextPatientID
	if p.AdmissionDate == "" {
		p.AdmissionDate = time.Now().Format("2006-01-02")
	}
	p.CreateTime = now
	p.UpdateTime = now

	s.patients[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

// Update merges the supplied fields over the existing record. The id is
// immutable.
func (s *Store) Update(_ context.Context, id uint, upd models.PatientUpdate) (models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return models.Patient{}, fmt.Errorf("%w: patient %d", store.ErrNotFound, id)
	}

	upd.Apply(&p)
	if err := store.ValidatePatient(p); err != nil {
		return models.Patient{}, err
	}
	p.ID = id
	p.UpdateTime = time.Now().Format(timeFormat)
	s.patients[id] = p
	return p, nil
}

// FindByID looks a patient up by id.
func (s *Store) FindByID(_ context.Context, id uint) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return models.Patient{}, fmt.Errorf("%w: patient %d", store.ErrNotFound, id)
	}
	return p, nil
}

// List returns all patients in insertion order.
func (s *Store) List(_ context.Context) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Patient, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.patients[id])
	}
	return out, nil
}

// Search returns the patients whose name or detail text contains term,
// case-insensitively.
func (s *Store) Search(ctx context.Context, term string) ([]models.Patient, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return store.FilterPatients(all, term), nil
}

// Append validates the component scores, computes the total and appends a
// new assessment to the patient's history. The patient record itself is not
// touched.
func (s *Store) Append(_ context.Context, patientID uint, in models.AssessmentInput) (models.Assessment, error) {
	total, err := gcs.ComputeTotal(in.EyeScore, in.VerbalScore, in.MotorScore)
	if err != nil {
		return models.Assessment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[patientID]; !ok {
		return models.Assessment{}, fmt.Errorf("%w: patient %d", store.ErrUnknownPatient, patientID)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	s.nextAssessmentID++
	a := models.Assessment{
		ID:          s.nextAssessmentID,
		PatientID:   patientID,
		Timestamp:   ts,
		EyeScore:    in.EyeScore,
		VerbalScore: in.VerbalScore,
		MotorScore:  in.MotorScore,
		TotalScore:  total,
		Notes:       in.Notes,
	}
	s.assessments[patientID] = append(s.assessments[patientID], a)
	return a, nil
}

// HistoryFor returns the patient's assessments ordered by timestamp
// ascending, ties broken by id. A patient with no assessments yields an
// empty slice, not an error.
func (s *Store) HistoryFor(_ context.Context, patientID uint) ([]models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.assessments[patientID]
	out := make([]models.Assessment, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LatestFor returns the assessment with the maximum timestamp, or nil when
// the patient has no history.
func (s *Store) LatestFor(ctx context.Context, patientID uint) (*models.Assessment, error) {
	history, err := s.HistoryFor(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return store.Latest(history), nil
}

// Clear drops all records but keeps the id counters running, so ids are
// never reissued.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients = make(map[uint]models.Patient)
	s.order = nil
	s.assessments = make(map[uint][]models.Assessment)
}
