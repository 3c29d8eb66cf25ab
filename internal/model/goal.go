package model

// Goal is a dated macro/weight target. A goal row is effective from its date
// onward until a newer row exists.
type Goal struct {
	Date     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Weight   float64
}

// DefaultGoal is the hard-coded fallback returned whenever no stored goal
// covers a date. A missing goal must never block logging.
func DefaultGoal() Goal {
	return Goal{
		Calories: 2000,
		Protein:  150,
		Carbs:    250,
		Fats:     65,
	}
}
