// Package client consumes the remote GCS API and degrades to the local
// in-memory store when the remote side is unreachable.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
)

// Remote is a thin consumer of the patient/score endpoints. It performs a
// single attempt per call: retry policy is the caller's decision, and the
// fallback path deliberately does not retry.
type Remote struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewRemote creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api").
func NewRemote(baseURL string, logger *zap.Logger) *Remote {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Remote{
		http:   httpClient,
		logger: logger,
	}
}

// ScoreResult mirrors the server's score-append response.
type ScoreResult struct {
	Assessment models.Assessment `json:"assessment"`
	TotalScore int               `json:"total_score"`
	Severity   gcs.Severity      `json:"severity"`
}

type scorePayload struct {
	EyeScore    int        `json:"eye_score"`
	VerbalScore int        `json:"verbal_score"`
	MotorScore  int        `json:"motor_score"`
	Notes       *string    `json:"notes,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

func remoteStatusError(path string, resp *resty.Response) error {
	return fmt.Errorf("remote api %s: status %d", path, resp.StatusCode())
}

// ListPatients fetches the full directory.
func (r *Remote) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&patients).
		Get("/patients")
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	if resp.IsError() {
		return nil, remoteStatusError("/patients", resp)
	}
	return patients, nil
}

// SearchPatients fetches the directory filtered by the search term.
func (r *Remote) SearchPatients(ctx context.Context, term string) ([]models.Patient, error) {
	var patients []models.Patient
	resp, err := r.http.R().
		SetContext(ctx).
		SetQueryParam("q", term).
		SetResult(&patients).
		Get("/patients")
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	if resp.IsError() {
		return nil, remoteStatusError("/patients", resp)
	}
	return patients, nil
}

// CreatePatient posts a new patient; the server assigns the id.
func (r *Remote) CreatePatient(ctx context.Context, p models.Patient) (models.Patient, error) {
	p.ID = 0
	var created models.Patient
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&created).
		Post("/patients")
	if err != nil {
		return models.Patient{}, fmt.Errorf("create patient: %w", err)
	}
	if resp.IsError() {
		return models.Patient{}, remoteStatusError("/patients", resp)
	}
	return created, nil
}

// GetPatient fetches a single patient by id.
func (r *Remote) GetPatient(ctx context.Context, id uint) (models.Patient, error) {
	path := fmt.Sprintf("/patients/%d", id)
	var p models.Patient
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&p).
		Get(path)
	if err != nil {
		return models.Patient{}, fmt.Errorf("get patient: %w", err)
	}
	if resp.IsError() {
		return models.Patient{}, remoteStatusError(path, resp)
	}
	return p, nil
}

// UpdatePatient sends a partial update for a patient.
func (r *Remote) UpdatePatient(ctx context.Context, id uint, upd models.PatientUpdate) (models.Patient, error) {
	path := fmt.Sprintf("/patients/%d", id)
	var updated models.Patient
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(upd).
		SetResult(&updated).
		Put(path)
	if err != nil {
		return models.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	if resp.IsError() {
		return models.Patient{}, remoteStatusError(path, resp)
	}
	return updated, nil
}

// AppendScore posts a new assessment; the server computes the total.
func (r *Remote) AppendScore(ctx context.Context, patientID uint, in models.AssessmentInput) (ScoreResult, error) {
	path := fmt.Sprintf("/patients/%d/scores", patientID)

	payload := scorePayload{
		EyeScore:    in.EyeScore,
		VerbalScore: in.VerbalScore,
		MotorScore:  in.MotorScore,
		Notes:       in.Notes,
	}
	if !in.Timestamp.IsZero() {
		ts := in.Timestamp
		payload.Timestamp = &ts
	}

	r.logger.Debug("posting GCS score",
		zap.Uint("patient_id", patientID),
		zap.Int("eye", in.EyeScore),
		zap.Int("verbal", in.VerbalScore),
		zap.Int("motor", in.MotorScore),
	)

	var result ScoreResult
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(path)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("append score: %w", err)
	}
	if resp.IsError() {
		return ScoreResult{}, remoteStatusError(path, resp)
	}
	return result, nil
}

// ScoresFor fetches a patient's assessments latest-first.
func (r *Remote) ScoresFor(ctx context.Context, patientID uint) ([]models.Assessment, error) {
	path := fmt.Sprintf("/patients/%d/scores", patientID)
	var scores []models.Assessment
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&scores).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	if resp.IsError() {
		return nil, remoteStatusError(path, resp)
	}
	return scores, nil
}

// TrendSummary mirrors the aggregate section of the server's trends
// response.
type TrendSummary struct {
	Count          int          `json:"count"`
	AverageTotal   float64      `json:"average_total"`
	StdDevTotal    float64      `json:"std_dev_total"`
	LatestSeverity gcs.Severity `json:"latest_severity"`
}

// TrendsResult mirrors the server's trends response: chronological history
// plus the summary stats.
type TrendsResult struct {
	History []models.Assessment `json:"history"`
	Summary TrendSummary        `json:"summary"`
}

// TrendsFor fetches a patient's assessments in chronological order together
// with the server-computed summary.
func (r *Remote) TrendsFor(ctx context.Context, patientID uint) (TrendsResult, error) {
	path := fmt.Sprintf("/patients/%d/trends", patientID)
	var trends TrendsResult
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&trends).
		Get(path)
	if err != nil {
		return TrendsResult{}, fmt.Errorf("list trends: %w", err)
	}
	if resp.IsError() {
		return TrendsResult{}, remoteStatusError(path, resp)
	}
	return trends, nil
}
