package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gcs-tracker/internal/models"
)

func TestValidatePatient(t *testing.T) {
	assert.NoError(t, ValidatePatient(models.Patient{Name: "Jane Smith"}))
	assert.ErrorIs(t, ValidatePatient(models.Patient{Name: ""}), ErrValidation)
	assert.ErrorIs(t, ValidatePatient(models.Patient{Name: " \t "}), ErrValidation)

	age := -3
	assert.ErrorIs(t, ValidatePatient(models.Patient{Name: "Jane", Age: &age}), ErrValidation)
	age = 0
	assert.NoError(t, ValidatePatient(models.Patient{Name: "Jane", Age: &age}))
}

func TestFilterPatients(t *testing.T) {
	dept := "Neurology"
	patients := []models.Patient{
		{Name: "Jane Smith", Department: &dept},
		{Name: "Ahmad Rahimi"},
	}

	assert.Len(t, FilterPatients(patients, ""), 2)
	assert.Len(t, FilterPatients(patients, "  "), 2)

	byName := FilterPatients(patients, "RAHIMI")
	if assert.Len(t, byName, 1) {
		assert.Equal(t, "Ahmad Rahimi", byName[0].Name)
	}

	byDept := FilterPatients(patients, "neuro")
	if assert.Len(t, byDept, 1) {
		assert.Equal(t, "Jane Smith", byDept[0].Name)
	}

	assert.Empty(t, FilterPatients(patients, "cardiology"))
}

func TestLatest(t *testing.T) {
	assert.Nil(t, Latest(nil))

	t1 := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	history := []models.Assessment{
		{ID: 1, Timestamp: t2},
		{ID: 2, Timestamp: t1},
	}
	latest := Latest(history)
	if assert.NotNil(t, latest) {
		assert.Equal(t, uint(1), latest.ID)
	}

	// Equal timestamps: the higher id (appended later) wins.
	tied := []models.Assessment{
		{ID: 3, Timestamp: t1},
		{ID: 4, Timestamp: t1},
	}
	latest = Latest(tied)
	if assert.NotNil(t, latest) {
		assert.Equal(t, uint(4), latest.ID)
	}
}
