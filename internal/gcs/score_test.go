package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal_AllValidCombinations(t *testing.T) {
	for eye := EyeMin; eye <= EyeMax; eye++ {
		for verbal := VerbalMin; verbal <= VerbalMax; verbal++ {
			for motor := MotorMin; motor <= MotorMax; motor++ {
				total, err := ComputeTotal(eye, verbal, motor)
				require.NoError(t, err)
				assert.Equal(t, eye+verbal+motor, total)
				assert.GreaterOrEqual(t, total, TotalMin)
				assert.LessOrEqual(t, total, TotalMax)
			}
		}
	}
}

func TestComputeTotal_RejectsOutOfDomain(t *testing.T) {
	cases := []struct {
		name              string
		eye, verbal, motor int
	}{
		{"eye zero", 0, 3, 3},
		{"eye too high", 5, 3, 3},
		{"verbal zero", 2, 0, 3},
		{"verbal too high", 2, 6, 3},
		{"motor zero", 2, 3, 0},
		{"motor too high", 2, 3, 7},
		{"negative eye", -1, 3, 3},
		{"all zero", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeTotal(tc.eye, tc.verbal, tc.motor)
			assert.ErrorIs(t, err, ErrInvalidComponentScore)
		})
	}
}

func TestClassifySeverity_Boundaries(t *testing.T) {
	cases := []struct {
		total int
		want  Severity
	}{
		{3, SeveritySevere},
		{7, SeveritySevere},
		{8, SeveritySevere},
		{9, SeverityModerate},
		{12, SeverityModerate},
		{13, SeverityMild},
		{15, SeverityMild},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifySeverity(tc.total), "total=%d", tc.total)
	}
}

func TestClassifySeverity_ClampsOutOfRange(t *testing.T) {
	// The UI always needs a label, so out-of-range totals clamp instead of
	// failing.
	assert.Equal(t, SeveritySevere, ClassifySeverity(0))
	assert.Equal(t, SeveritySevere, ClassifySeverity(-5))
	assert.Equal(t, SeverityMild, ClassifySeverity(16))
	assert.Equal(t, SeverityMild, ClassifySeverity(100))
}
