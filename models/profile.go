package models

// UserProfile holds one calculation's inputs. It is built per request and
// discarded after the response; nothing is ever persisted.
type UserProfile struct {
	Name          string  `json:"name,omitempty"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	AgeYears      int     `json:"age_years"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
}

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
)

// Warning is a structured finding you can show in the UI / API response.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// CalculationResult is derived from a validated UserProfile. Values are kept
// at full precision here; rounding happens only at the display boundary.
type CalculationResult struct {
	BMR          float64  `json:"bmr"`
	TDEE         float64  `json:"tdee"`
	Multiplier   float64  `json:"activity_multiplier"`
	ProteinGrams float64  `json:"protein_g"`
	FatGrams     float64  `json:"fat_g"`
	CarbGrams    float64  `json:"carb_g"`
	BMI          float64  `json:"bmi"`
	BMICategory  string   `json:"bmi_category"`
	Warning      *Warning `json:"warning,omitempty"`
}
