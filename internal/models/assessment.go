package models

import "time"

// Assessment defines the structure for a single GCS assessment. Assessments
// are append-only: once written they are never updated or deleted.
type Assessment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientID   uint      `json:"patient_id" gorm:"index"`
	Timestamp   time.Time `json:"timestamp" gorm:"index"`
	EyeScore    int       `json:"eye_score"`
	VerbalScore int       `json:"verbal_score"`
	MotorScore  int       `json:"motor_score"`
	TotalScore  int       `json:"total_score"` // Derived; recomputed at write time
	Notes       *string   `json:"notes"`
}

// AssessmentInput carries the caller-supplied part of a new assessment.
// TotalScore is deliberately absent: the store computes it. A zero Timestamp
// defaults to the time of creation.
type AssessmentInput struct {
	EyeScore    int       `json:"eye_score"`
	VerbalScore int       `json:"verbal_score"`
	MotorScore  int       `json:"motor_score"`
	Notes       *string   `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
}
