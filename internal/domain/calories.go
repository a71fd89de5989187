package domain

import "math"

// calorieBaseRates are kcal per minute at intensity 5.
var calorieBaseRates = map[WorkoutType]float64{
	WorkoutTypeCardio:      8,
	WorkoutTypeStrength:    6,
	WorkoutTypeFlexibility: 3,
	WorkoutTypeSports:      7,
	WorkoutTypeOther:       5,
}

const defaultCalorieBaseRate = 5

// EstimateCalories is the local formula used when no prediction service answers:
// round(baseRate[type] * duration * intensity/5).
func EstimateCalories(t WorkoutType, duration, intensity int) int {
	rate, ok := calorieBaseRates[t]
	if !ok {
		rate = defaultCalorieBaseRate
	}
	return int(math.Round(rate * float64(duration) * (float64(intensity) / 5)))
}
