package utils

import (
	"errors"
	"time"
)

// CalculateAge returns whole years elapsed between dob and now.
func CalculateAge(dob, now time.Time) int {
	if dob.IsZero() || dob.After(now) {
		return 0
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 300 || weightKg < 20 || weightKg > 500 {
		return 0, errors.New("height/weight out of plausible range")
	}
	h := heightCm / 100.0
	return Round1(weightKg / (h * h)), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
