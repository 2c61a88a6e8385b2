package random

import (
	"math"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Code returns one of the known activity codes
func Code() string {
	codes := ftracker.Codes()
	return codes[rnd.Intn(len(codes))]
}

// UnknownCode returns non-empty activity code which ftracker does not know
func UnknownCode() string {
	for {
		code := ASCIIString(1, 8)
		if _, ok := ftracker.Arity(code); !ok {
			return code
		}
	}
}

// Package returns valid package for the given code.
// Readings lie in the ranges a real tracker reports.
func Package(code string) ftracker.Package {
	duration := Float64(0.1, 3)
	data := []float64{
		float64(Int(1000, 20000)), // action
		duration,
		float64(Int(50, 140)), // weight
	}

	switch code {
	case "RUN":
		// steps follow from a running pace of 6-18 km/h
		speed := Float64(6, 18)
		data[0] = math.Ceil(speed * duration * ftracker.MInKm / ftracker.LenStep)
	case "WLK":
		data = append(data, float64(Int(150, 220))) // height
	case "SWM":
		data = append(data,
			float64(Int(10, 50)), // pool length
			float64(Int(1, 60)),  // pool laps
		)
	}

	return ftracker.Package{Code: code, Data: data}
}

// Packages returns n valid packages with random codes
func Packages(n int) []ftracker.Package {
	res := make([]ftracker.Package, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, Package(Code()))
	}
	return res
}
