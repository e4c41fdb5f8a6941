package training

import (
	"fmt"
	"strings"
)

// UnknownTypeError is returned for workout codes outside the supported set.
type UnknownTypeError struct {
	WorkoutType string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q, supported types: %s",
		e.WorkoutType, strings.Join(WorkoutTypes(), ", "))
}

// ArityError is returned when a sensor packet carries the wrong number of
// values for its workout type.
type ArityError struct {
	WorkoutType string
	Want        int
	Got         int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("workout type %s expects %d values, got %d",
		e.WorkoutType, e.Want, e.Got)
}

// UnimplementedError reports a training variant without a calorie formula.
type UnimplementedError struct {
	TrainingType string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("training type %s does not implement calorie counting",
		e.TrainingType)
}
