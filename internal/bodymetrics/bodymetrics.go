package bodymetrics

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange      = errors.New("value out of plausible range")
	ErrUnknownSex      = errors.New("unknown sex")
	ErrUnknownActivity = errors.New("unknown activity level")
)

// Sex selects the TMB formula variant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" and the Portuguese "m"/"f", "masculino"/"feminino".
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "masculino":
		return Male, nil
	case "female", "f", "feminino":
		return Female, nil
	}
	return "", fmt.Errorf("%w %q (expected male or female)", ErrUnknownSex, s)
}

// IMC computes the body mass index from weight in kg and height in cm.
func IMC(weightKg, heightCm float64) (float64, error) {
	if err := checkBody(weightKg, heightCm); err != nil {
		return 0, err
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// IMCCategory returns the band an IMC value falls in.
func IMCCategory(imc float64) string {
	switch {
	case imc < 18.5:
		return "Abaixo do peso"
	case imc < 25:
		return "Peso normal"
	case imc < 30:
		return "Sobrepeso"
	case imc < 35:
		return "Obesidade grau I"
	case imc < 40:
		return "Obesidade grau II"
	default:
		return "Obesidade grau III"
	}
}

// TMB computes the basal metabolic rate in kcal/day (Mifflin-St Jeor).
func TMB(weightKg, heightCm float64, age int, sex Sex) (float64, error) {
	if err := checkBody(weightKg, heightCm); err != nil {
		return 0, err
	}
	if age < 10 || age > 120 {
		return 0, fmt.Errorf("%w: age %d", ErrOutOfRange, age)
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case Male:
		return base + 5, nil
	case Female:
		return base - 161, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSex, sex)
}

// ActivityLevels maps each activity level to its TMB multiplier.
var ActivityLevels = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// DailyCalories multiplies a TMB by the factor of the given activity level.
func DailyCalories(tmb float64, activity string) (float64, error) {
	factor, ok := ActivityLevels[strings.ToLower(strings.TrimSpace(activity))]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownActivity, activity)
	}
	return tmb * factor, nil
}

// checkBody rejects garbage input before any formula runs.
func checkBody(weightKg, heightCm float64) error {
	if weightKg < 20 || weightKg > 400 {
		return fmt.Errorf("%w: weight %.1f kg", ErrOutOfRange, weightKg)
	}
	if heightCm < 50 || heightCm > 250 {
		return fmt.Errorf("%w: height %.1f cm", ErrOutOfRange, heightCm)
	}
	return nil
}
