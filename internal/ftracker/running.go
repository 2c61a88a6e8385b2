package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a run.
type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{
		Training: Training{Action: action, Duration: duration, Weight: weight},
	}
}

func (Running) TrainingType() string {
	return "Running"
}

// SpentCalories returns burned kcal.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * r.Duration * MinInH
}
