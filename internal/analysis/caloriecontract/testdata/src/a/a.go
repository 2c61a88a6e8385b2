package a

import "ftracker"

type Rowing struct { // want "Rowing embeds Training but does not implement SpentCalories"
	ftracker.Training
}

type Hiking struct {
	*ftracker.Training
	Height int
}

func (h *Hiking) SpentCalories() float64 {
	return h.Weight * float64(h.Height)
}

type Nested struct {
	ftracker.Running
}

type Plain struct {
	Action int
}
