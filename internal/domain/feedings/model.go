package feedings

import "time"

type Meal string

const (
	MealBreakfast Meal = "B"
	MealLunch     Meal = "L"
	MealDinner    Meal = "D"
)

// Meals en el orden en que se muestran en el formulario.
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner}

func (m Meal) Label() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return string(m)
	}
}

// Feeding es una comida registrada para un gato. Date es sólo fecha (UTC, 00:00).
type Feeding struct {
	ID    string
	CatID string

	Date time.Time
	Meal Meal

	CreatedAt time.Time
}
