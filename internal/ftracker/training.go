// Package ftracker computes workout summaries from raw fitness tracker readings.
package ftracker

// Common constants of the formulas.
const (
	LenStep = 0.65 // mean step length in meters
	MInKm   = 1000 // meters in a kilometer
	MinInH  = 60   // minutes in an hour
)

// Workout is a training whose summary can be reported.
// Every workout embeds Training and supplies its own calorie formula.
type Workout interface {
	TrainingType() string
	Base() Training
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Training holds the readings common to all workouts.
// It has no SpentCalories method, so a bare Training is not a Workout.
type Training struct {
	Action   int     // number of steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

// Base returns the common readings of the workout.
func (t Training) Base() Training {
	return t
}

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	return distance(t.Action, LenStep)
}

// MeanSpeed returns the mean speed in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// ShowTrainingInfo builds the summary of w.
func ShowTrainingInfo(w Workout) InfoMessage {
	return InfoMessage{
		TrainingType: w.TrainingType(),
		Duration:     w.Base().Duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
