package services

import (
	"fmt"

	"github.com/Devanshi-Mehta/FitFuel/models"
	"github.com/Devanshi-Mehta/FitFuel/utils"
)

// ActivityMultipliers is the single source of truth for valid activity levels;
// it drives both the TDEE lookup and input validation.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Plausible human ranges. Same guards as the BMI calculator so the two never
// disagree about what a valid body is.
const (
	MinHeightCm = utils.MinHeightCm
	MaxHeightCm = utils.MaxHeightCm
	MinWeightKg = utils.MinWeightKg
	MaxWeightKg = utils.MaxWeightKg
	MinAgeYears = 1
	MaxAgeYears = 120
)

// kcal per gram and heuristic grams per kg body weight.
const (
	proteinKcalPerGram = 4.0
	fatKcalPerGram     = 9.0
	carbKcalPerGram    = 4.0
	proteinGramsPerKg  = 1.8
	fatGramsPerKg      = 0.8
)

// ValidateProfile checks every field against the plausible ranges and the two
// enumerations. The first offending field wins; callers get exactly one
// ValidationError per request.
func ValidateProfile(p models.UserProfile) error {
	if p.HeightCm <= 0 {
		return invalid("height", "must be greater than zero")
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		return invalid("height", fmt.Sprintf("must be between %g and %g cm", float64(MinHeightCm), float64(MaxHeightCm)))
	}
	if p.WeightKg <= 0 {
		return invalid("weight", "must be greater than zero")
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		return invalid("weight", fmt.Sprintf("must be between %g and %g kg", float64(MinWeightKg), float64(MaxWeightKg)))
	}
	if p.AgeYears <= 0 {
		return invalid("age", "must be greater than zero")
	}
	if p.AgeYears < MinAgeYears || p.AgeYears > MaxAgeYears {
		return invalid("age", fmt.Sprintf("must be between %d and %d years", MinAgeYears, MaxAgeYears))
	}
	if p.Sex != "male" && p.Sex != "female" {
		return invalid("sex", `must be "male" or "female"`)
	}
	if _, ok := ActivityMultipliers[p.ActivityLevel]; !ok {
		return invalid("activity", "unknown activity level")
	}
	return nil
}

// BMRMifflinStJeor estimates resting energy expenditure (kcal/day).
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
func BMRMifflinStJeor(weightKg, heightCm float64, ageYears int, sex string) float64 {
	base := 10.0*weightKg + 6.25*heightCm - 5.0*float64(ageYears)
	if sex == "male" {
		return base + 5.0
	}
	return base - 161.0
}

// Calculate validates the profile and produces the full result: BMR, TDEE,
// the protein/fat/carb gram split, and BMI. Pure: same profile in, same
// result out, no side effects.
func Calculate(p models.UserProfile) (models.CalculationResult, error) {
	if err := ValidateProfile(p); err != nil {
		return models.CalculationResult{}, err
	}

	bmr := BMRMifflinStJeor(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex)
	mult := ActivityMultipliers[p.ActivityLevel]
	tdee := bmr * mult

	// Macro heuristic: fixed protein and fat per kg body weight, carbs take
	// whatever calories remain.
	proteinGrams := proteinGramsPerKg * p.WeightKg
	fatGrams := fatGramsPerKg * p.WeightKg
	proteinKcal := proteinGrams * proteinKcalPerGram
	fatKcal := fatGrams * fatKcalPerGram

	res := models.CalculationResult{
		BMR:          bmr,
		TDEE:         tdee,
		Multiplier:   mult,
		ProteinGrams: proteinGrams,
		FatGrams:     fatGrams,
	}

	remaining := tdee - proteinKcal - fatKcal
	if remaining <= 0 {
		// Protein + fat already cover the whole energy budget. Clamp carbs to
		// zero and tell the user the heuristic broke down for their numbers.
		res.CarbGrams = 0
		res.Warning = &models.Warning{
			Code:     "macros_exceed_tdee",
			Severity: models.Caution,
			Message:  "protein and fat targets alone exceed your daily energy need; the carbohydrate estimate was clamped to zero",
		}
	} else {
		res.CarbGrams = remaining / carbKcalPerGram
	}

	// Ranges were validated above, so the BMI guards cannot fire.
	if bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		res.BMI = bmi
		res.BMICategory = utils.BMICategory(bmi)
	}

	return res, nil
}
