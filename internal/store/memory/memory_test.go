package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
	"gcs-tracker/internal/store"
)

func newPatient(name string) models.Patient {
	return models.Patient{Name: name, AdmissionDate: "2025-05-01"}
}

func TestAdd_AssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Add(ctx, newPatient("Jane Smith"))
	require.NoError(t, err)
	second, err := s.Add(ctx, newPatient("Jane Smith"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
}

func TestAdd_RejectsEmptyName(t *testing.T) {
	s := NewStore()

	_, err := s.Add(context.Background(), newPatient("   "))
	assert.ErrorIs(t, err, store.ErrValidation)

	patients, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestAdd_RejectsNegativeAge(t *testing.T) {
	s := NewStore()
	age := -1
	p := newPatient("John Doe")
	p.Age = &age

	_, err := s.Add(context.Background(), p)
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestUpdate_MergesFieldsAndKeepsID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	name := "John A. Doe"
	dept := "icu"
	updated, err := s.Update(ctx, created.ID, models.PatientUpdate{Name: &name, Department: &dept})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "John A. Doe", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "icu", *updated.Department)
	// Untouched fields survive the merge.
	assert.Equal(t, "2025-05-01", updated.AdmissionDate)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewStore()
	name := "Nobody"

	_, err := s.Update(context.Background(), 42, models.PatientUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_InsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		_, err := s.Add(ctx, newPatient(name))
		require.NoError(t, err)
	}

	patients, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Charlie", patients[0].Name)
	assert.Equal(t, "Alice", patients[1].Name)
	assert.Equal(t, "Bob", patients[2].Name)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p := newPatient("Jane Smith")
	dept := "neurology"
	p.Department = &dept
	_, err := s.Add(ctx, p)
	require.NoError(t, err)
	_, err = s.Add(ctx, newPatient("Ahmad Rahimi"))
	require.NoError(t, err)

	byName, err := s.Search(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Jane Smith", byName[0].Name)

	byDetail, err := s.Search(ctx, "NEURO")
	require.NoError(t, err)
	require.Len(t, byDetail, 1)
	assert.Equal(t, "Jane Smith", byDetail[0].Name)

	none, err := s.Search(ctx, "cardiology")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAppend_ComputesTotalAndAppends(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	a, err := s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 2, VerbalScore: 3, MotorScore: 4})
	require.NoError(t, err)
	assert.Equal(t, 9, a.TotalScore)
	assert.Equal(t, p.ID, a.PatientID)
	assert.False(t, a.Timestamp.IsZero())

	history, err := s.HistoryFor(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, a.TotalScore, history[0].TotalScore)
}

func TestAppend_UnknownPatientDoesNotMutate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Append(ctx, 99, models.AssessmentInput{EyeScore: 2, VerbalScore: 3, MotorScore: 4})
	assert.ErrorIs(t, err, store.ErrUnknownPatient)

	history, err := s.HistoryFor(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppend_InvalidComponentScore(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	_, err = s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 0, VerbalScore: 3, MotorScore: 4})
	assert.ErrorIs(t, err, gcs.ErrInvalidComponentScore)

	history, err := s.HistoryFor(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistoryFor_SortedByTimestampAscending(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	t1 := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	// Insert out of chronological order.
	for _, ts := range []time.Time{t2, t3, t1} {
		_, err := s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 3, VerbalScore: 4, MotorScore: 5, Timestamp: ts})
		require.NoError(t, err)
	}

	history, err := s.HistoryFor(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, t1, history[0].Timestamp)
	assert.Equal(t, t2, history[1].Timestamp)
	assert.Equal(t, t3, history[2].Timestamp)
}

func TestLatestFor_MaxTimestampWinsRegardlessOfInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	t1 := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	_, err = s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 2, VerbalScore: 2, MotorScore: 3, Timestamp: t3})
	require.NoError(t, err)
	_, err = s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 3, VerbalScore: 4, MotorScore: 5, Timestamp: t1})
	require.NoError(t, err)
	_, err = s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 3, VerbalScore: 3, MotorScore: 5, Timestamp: t2})
	require.NoError(t, err)

	latest, err := s.LatestFor(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, t3, latest.Timestamp)
	assert.Equal(t, 7, latest.TotalScore)
}

func TestLatestFor_EqualTimestampsTieBreakOnID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	ts := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	_, err = s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 2, VerbalScore: 3, MotorScore: 4, Timestamp: ts})
	require.NoError(t, err)
	second, err := s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 4, VerbalScore: 5, MotorScore: 6, Timestamp: ts})
	require.NoError(t, err)

	latest, err := s.LatestFor(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
}

func TestLatestFor_EmptyHistoryReturnsNil(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	latest, err := s.LatestFor(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	history, err := s.HistoryFor(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClear_NeverReusesIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Add(ctx, newPatient("John Doe"))
	require.NoError(t, err)

	s.Clear()

	second, err := s.Add(ctx, newPatient("Jane Smith"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestEndToEnd_JaneSmith(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	age := 32
	gender := "female"
	p, err := s.Add(ctx, models.Patient{Name: "Jane Smith", Age: &age, Gender: &gender})
	require.NoError(t, err)

	a, err := s.Append(ctx, p.ID, models.AssessmentInput{EyeScore: 2, VerbalScore: 2, MotorScore: 3})
	require.NoError(t, err)

	assert.Equal(t, 7, a.TotalScore)
	assert.Equal(t, gcs.SeveritySevere, gcs.ClassifySeverity(a.TotalScore))

	latest, err := s.LatestFor(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, a.ID, latest.ID)
}

func TestSeed_LoadsDemoDataset(t *testing.T) {
	s := NewStore()
	Seed(s)

	patients, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 3)

	history, err := s.HistoryFor(context.Background(), patients[0].ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, 9, history[0].TotalScore)
	assert.Equal(t, 12, history[2].TotalScore)
}
