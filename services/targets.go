package services

import "math"

const (
	GenderMale   = "male"
	GenderFemale = "female"

	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// activityFactor is the sedentary TDEE multiplier; the product does not ask for activity level.
const activityFactor = 1.2

type Targets struct {
	Calories int `json:"targetCalories"`
	Protein  int `json:"targetProtein"`
	Carbs    int `json:"targetCarbs"`
	Fats     int `json:"targetFats"`
}

// CalculateTargets derives daily targets from body metrics using Mifflin-St Jeor.
// weight in kg, height in cm, age in years.
func CalculateTargets(gender string, weight, height float64, age int, goal string) Targets {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	calories := int(math.Round(bmr * activityFactor))
	switch goal {
	case GoalLose:
		calories -= 500
	case GoalGain:
		calories += 500
	}

	// 2 g/kg protein, 1 g/kg fat, carbs take the remaining energy.
	protein := int(math.Round(weight * 2))
	fats := int(math.Round(weight))
	remaining := float64(calories - protein*4 - fats*9)
	carbs := int(math.Round(remaining / 4))
	if carbs < 0 {
		carbs = 0
	}

	return Targets{Calories: calories, Protein: protein, Carbs: carbs, Fats: fats}
}
