package ftracker

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim.
type Swimming struct {
	Training
	LengthPool float64 // m
	CountPool  int
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (Swimming) TrainingType() string {
	return "Swimming"
}

// Distance returns the distance in km counted by strokes.
func (s Swimming) Distance() float64 {
	return distance(s.Action, swimmingLenStep)
}

// MeanSpeed returns the mean speed in km/h counted by pool laps.
// Strokes do not affect it.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

// SpentCalories returns burned kcal.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
