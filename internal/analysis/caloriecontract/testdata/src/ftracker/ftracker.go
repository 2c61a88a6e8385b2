package ftracker

type Training struct {
	Action   int
	Duration float64
	Weight   float64
}

func (t Training) MeanSpeed() float64 {
	return float64(t.Action) / t.Duration
}

type Running struct {
	Training
}

func (r Running) SpentCalories() float64 {
	return r.MeanSpeed() * r.Weight
}

type Cycling struct { // want "Cycling embeds Training but does not implement SpentCalories"
	Training
	Cadence int
}

type Summary struct {
	Training Training
}
