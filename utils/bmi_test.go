package utils_test

import (
	"testing"

	"github.com/Devanshi-Mehta/FitFuel/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := utils.CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)
}

func TestCalculateBMIRejectsNonPositive(t *testing.T) {
	_, err := utils.CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = utils.CalculateBMI(175, -1)
	assert.Error(t, err)
}

func TestCalculateBMIRejectsImplausible(t *testing.T) {
	_, err := utils.CalculateBMI(300, 70)
	assert.Error(t, err)

	_, err = utils.CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.0, "Overweight"},
		{32.0, "Obesity class I"},
		{37.0, "Obesity class II"},
		{45.0, "Obesity class III"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}
