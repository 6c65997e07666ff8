package client

import (
	"context"

	"go.uber.org/zap"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
	"gcs-tracker/internal/store"
	"gcs-tracker/internal/store/memory"
)

// Fallback exposes the directory and record store contracts over the remote
// API, degrading to the local in-memory store whenever a remote call fails
// (transport error or non-2xx). The failure is logged at warn level and
// never propagated; each operation attempts the remote exactly once, with
// no retry. Validation and domain errors, by contrast, are always raised to
// the caller.
type Fallback struct {
	remote *Remote
	local  *memory.Store
	logger *zap.Logger
}

var (
	_ store.Directory   = (*Fallback)(nil)
	_ store.RecordStore = (*Fallback)(nil)
)

// NewFallback wraps the remote client with the given local store.
func NewFallback(remote *Remote, local *memory.Store, logger *zap.Logger) *Fallback {
	return &Fallback{
		remote: remote,
		local:  local,
		logger: logger,
	}
}

func (f *Fallback) degrade(op string, err error) {
	f.logger.Warn("remote api unavailable, using local store",
		zap.String("op", op),
		zap.Error(err),
	)
}

// Add creates a patient, preferring the remote directory. Validation runs
// locally first so a bad record is rejected without a network round trip.
func (f *Fallback) Add(ctx context.Context, p models.Patient) (models.Patient, error) {
	if err := store.ValidatePatient(p); err != nil {
		return models.Patient{}, err
	}
	created, err := f.remote.CreatePatient(ctx, p)
	if err != nil {
		f.degrade("add patient", err)
		return f.local.Add(ctx, p)
	}
	return created, nil
}

// Update merges a partial update into a patient record.
func (f *Fallback) Update(ctx context.Context, id uint, upd models.PatientUpdate) (models.Patient, error) {
	updated, err := f.remote.UpdatePatient(ctx, id, upd)
	if err != nil {
		f.degrade("update patient", err)
		return f.local.Update(ctx, id, upd)
	}
	return updated, nil
}

// FindByID looks a patient up by id.
func (f *Fallback) FindByID(ctx context.Context, id uint) (models.Patient, error) {
	p, err := f.remote.GetPatient(ctx, id)
	if err != nil {
		f.degrade("get patient", err)
		return f.local.FindByID(ctx, id)
	}
	return p, nil
}

// List returns all patients.
func (f *Fallback) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := f.remote.ListPatients(ctx)
	if err != nil {
		f.degrade("list patients", err)
		return f.local.List(ctx)
	}
	return patients, nil
}

// Search filters patients by a case-insensitive substring.
func (f *Fallback) Search(ctx context.Context, term string) ([]models.Patient, error) {
	patients, err := f.remote.SearchPatients(ctx, term)
	if err != nil {
		f.degrade("search patients", err)
		return f.local.Search(ctx, term)
	}
	return patients, nil
}

// Append records a new assessment. Component scores are validated locally
// before any network call so InvalidComponentScore surfaces synchronously.
func (f *Fallback) Append(ctx context.Context, patientID uint, in models.AssessmentInput) (models.Assessment, error) {
	if err := gcs.ValidateComponents(in.EyeScore, in.VerbalScore, in.MotorScore); err != nil {
		return models.Assessment{}, err
	}
	result, err := f.remote.AppendScore(ctx, patientID, in)
	if err != nil {
		f.degrade("append score", err)
		return f.local.Append(ctx, patientID, in)
	}
	return result.Assessment, nil
}

// HistoryFor returns a patient's assessments in chronological order.
func (f *Fallback) HistoryFor(ctx context.Context, patientID uint) ([]models.Assessment, error) {
	trends, err := f.remote.TrendsFor(ctx, patientID)
	if err != nil {
		f.degrade("load history", err)
		return f.local.HistoryFor(ctx, patientID)
	}
	return trends.History, nil
}

// LatestFor returns the newest assessment, or nil for an empty history.
func (f *Fallback) LatestFor(ctx context.Context, patientID uint) (*models.Assessment, error) {
	history, err := f.HistoryFor(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return store.Latest(history), nil
}
