package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a package that cannot be turned into a workout
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrZeroDuration indicates a workout that lasted no time at all
	ErrZeroDuration = errors.New("duration must be positive")
)

// UnknownTypeError is returned for activity codes outside of Codes().
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Code)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrInvalidArgument
}

// ArityError is returned when a package carries the wrong number of readings.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("workout type %s expects %d values, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrInvalidArgument
}
