// Package gcs implements the Glasgow Coma Scale scoring model: component
// validation, total computation and severity classification.
package gcs

import (
	"errors"
	"fmt"
)

// Component score domains. Eye opening is scored 1-4, verbal response 1-5
// and motor response 1-6, giving a total in [3,15].
const (
	EyeMin    = 1
	EyeMax    = 4
	VerbalMin = 1
	VerbalMax = 5
	MotorMin  = 1
	MotorMax  = 6

	TotalMin = EyeMin + VerbalMin + MotorMin
	TotalMax = EyeMax + VerbalMax + MotorMax
)

// ErrInvalidComponentScore is returned when a component score is missing or
// outside its domain.
var ErrInvalidComponentScore = errors.New("invalid component score")

// Severity is the clinical interpretation of a total GCS score.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func validateComponent(name string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrInvalidComponentScore, name, min, max, value)
	}
	return nil
}

// ValidateComponents checks all three component scores against their domains.
func ValidateComponents(eye, verbal, motor int) error {
	if err := validateComponent("eye score", eye, EyeMin, EyeMax); err != nil {
		return err
	}
	if err := validateComponent("verbal score", verbal, VerbalMin, VerbalMax); err != nil {
		return err
	}
	return validateComponent("motor score", motor, MotorMin, MotorMax)
}

// ComputeTotal returns the total GCS score for the three component scores.
// Each component must lie within its domain; otherwise
// ErrInvalidComponentScore is returned.
func ComputeTotal(eye, verbal, motor int) (int, error) {
	if err := ValidateComponents(eye, verbal, motor); err != nil {
		return 0, err
	}
	return eye + verbal + motor, nil
}

// ClassifySeverity maps a total score to its severity category:
// 13-15 mild, 9-12 moderate, 3-8 severe. Out-of-range totals are clamped to
// the nearest boundary so a category is always produced.
func ClassifySeverity(total int) Severity {
	if total > TotalMax {
		total = TotalMax
	}
	if total < TotalMin {
		total = TotalMin
	}
	switch {
	case total >= 13:
		return SeverityMild
	case total >= 9:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
