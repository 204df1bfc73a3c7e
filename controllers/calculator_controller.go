package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Devanshi-Mehta/FitFuel/models"
	"github.com/Devanshi-Mehta/FitFuel/services"

	"github.com/gin-gonic/gin"
)

// CalculatorForm carries the raw form strings so the page can be redisplayed
// with exactly what the user typed, valid or not.
type CalculatorForm struct {
	Name     string
	Height   string
	Weight   string
	Age      string
	Sex      string
	Activity string
}

type activityOption struct {
	Value string
	Label string
}

var activityOptions = []activityOption{
	{"sedentary", "Sedentary (little or no exercise)"},
	{"light", "Light (exercise 1-3 days/week)"},
	{"moderate", "Moderate (exercise 3-5 days/week)"},
	{"active", "Active (hard exercise 6-7 days/week)"},
	{"very_active", "Very active (hard daily exercise or physical job)"},
}

// resultView holds display-rounded values; full precision stays in the service.
type resultView struct {
	BMR         int
	TDEE        int
	Protein     int
	Fat         int
	Carbs       int
	Multiplier  float64
	BMI         float64
	BMICategory string
	Warning     *models.Warning
}

func newResultView(r models.CalculationResult) resultView {
	return resultView{
		BMR:         int(math.Round(r.BMR)),
		TDEE:        int(math.Round(r.TDEE)),
		Protein:     int(math.Round(r.ProteinGrams)),
		Fat:         int(math.Round(r.FatGrams)),
		Carbs:       int(math.Round(r.CarbGrams)),
		Multiplier:  r.Multiplier,
		BMI:         r.BMI,
		BMICategory: r.BMICategory,
		Warning:     r.Warning,
	}
}

// ShowForm renders the empty input form.
func ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Form":       CalculatorForm{},
		"Activities": activityOptions,
	})
}

// Calculate handles the form submission: parse the raw strings into a typed
// profile, run the calculator, and render either the results page or the form
// again with an inline field error.
func Calculate(c *gin.Context) {
	form := CalculatorForm{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Height:   c.PostForm("height"),
		Weight:   c.PostForm("weight"),
		Age:      c.PostForm("age"),
		Sex:      c.PostForm("sex"),
		Activity: c.PostForm("activity"),
	}

	profile, verr := parseProfile(form)
	var res models.CalculationResult
	if verr == nil {
		var err error
		if res, err = services.Calculate(profile); err != nil {
			errors.As(err, &verr)
		}
	}
	if verr != nil {
		incCalculation("invalid_input")
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"Form":       form,
			"Error":      verr,
			"Activities": activityOptions,
		})
		return
	}

	incCalculation("ok")
	c.HTML(http.StatusOK, "results.html", gin.H{
		"Profile": profile,
		"Result":  newResultView(res),
	})
}

// CalculateRequest is the JSON body for the API surface.
type CalculateRequest struct {
	Name     string  `json:"name"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
	Activity string  `json:"activity"`
}

// CalculateJSON is the same calculator behind an API surface. Full-precision
// values come back; rounding is the caller's concern.
func CalculateJSON(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		incCalculation("invalid_input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": services.ValidationError{Field: "body", Reason: "malformed JSON"},
		})
		return
	}

	profile := models.UserProfile{
		Name:          strings.TrimSpace(req.Name),
		HeightCm:      req.Height,
		WeightKg:      req.Weight,
		AgeYears:      req.Age,
		Sex:           normalizeEnum(req.Sex),
		ActivityLevel: normalizeActivity(req.Activity),
	}

	res, err := services.Calculate(profile)
	if err != nil {
		incCalculation("invalid_input")
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incCalculation("ok")
	c.JSON(http.StatusOK, res)
}

// parseProfile turns raw form strings into a typed UserProfile. Missing and
// non-numeric values become field-level validation errors here, before the
// calculator ever runs, so the handler has a single error path.
func parseProfile(f CalculatorForm) (models.UserProfile, *services.ValidationError) {
	height, verr := parseFloatField("height", f.Height)
	if verr != nil {
		return models.UserProfile{}, verr
	}
	weight, verr := parseFloatField("weight", f.Weight)
	if verr != nil {
		return models.UserProfile{}, verr
	}
	age, verr := parseIntField("age", f.Age)
	if verr != nil {
		return models.UserProfile{}, verr
	}

	return models.UserProfile{
		Name:          f.Name,
		HeightCm:      height,
		WeightKg:      weight,
		AgeYears:      age,
		Sex:           normalizeEnum(f.Sex),
		ActivityLevel: normalizeActivity(f.Activity),
	}, nil
}

func parseFloatField(field, raw string) (float64, *services.ValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &services.ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &services.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

func parseIntField(field, raw string) (int, *services.ValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &services.ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Field: field, Reason: "must be a whole number"}
	}
	return v, nil
}

func normalizeEnum(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// normalizeActivity also accepts the camelCase spellings some clients send.
func normalizeActivity(v string) string {
	switch normalizeEnum(v) {
	case "veryactive", "very active":
		return "very_active"
	default:
		return normalizeEnum(v)
	}
}
