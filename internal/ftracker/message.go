package ftracker

import "fmt"

// InfoMessage is the summary of a single workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // h
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary as a single report line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

func (m InfoMessage) String() string {
	return m.Message()
}
