package ftracker

import "fmt"

// Package is a raw reading sent by the tracker: activity code and its values.
type Package struct {
	Code string
	Data []float64
}

type trainingFactory struct {
	arity int
	build func(data []float64) Workout
}

var codes = []string{"RUN", "WLK", "SWM"}

var trainings = map[string]trainingFactory{
	"RUN": {
		arity: 3,
		build: func(d []float64) Workout {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	"WLK": {
		arity: 4,
		build: func(d []float64) Workout {
			return NewSportsWalking(int(d[0]), d[1], d[2], int(d[3]))
		},
	},
	"SWM": {
		arity: 5,
		build: func(d []float64) Workout {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
}

// Codes returns the known activity codes.
func Codes() []string {
	return append([]string(nil), codes...)
}

// Arity returns the number of values expected for code.
func Arity(code string) (int, bool) {
	f, ok := trainings[code]
	return f.arity, ok
}

// ReadPackage builds the workout described by code and data.
//
// Values are action, duration and weight followed by the type specific ones:
// height for WLK, pool length and lap count for SWM. Integer values are
// truncated.
func ReadPackage(code string, data []float64) (Workout, error) {
	f, ok := trainings[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(data) != f.arity {
		return nil, &ArityError{Code: code, Want: f.arity, Got: len(data)}
	}
	if !(data[1] > 0) {
		return nil, fmt.Errorf("workout type %s: %w: %w, got %v", code, ErrInvalidArgument, ErrZeroDuration, data[1])
	}
	return f.build(data), nil
}

// SamplePackages returns the packages the tracker ships as a demo.
func SamplePackages() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
