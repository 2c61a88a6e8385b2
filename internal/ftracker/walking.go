package ftracker

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a race walk.
type SportsWalking struct {
	Training
	Height int // cm
}

func NewSportsWalking(action int, duration, weight float64, height int) SportsWalking {
	return SportsWalking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (SportsWalking) TrainingType() string {
	return "SportsWalking"
}

// SpentCalories returns burned kcal.
//
// The squared speed is floor-divided by the height in centimeters, so for
// ordinary walking speeds the second term is zero.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, float64(w.Height))*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * MinInH
}
