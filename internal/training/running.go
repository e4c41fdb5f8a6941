package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a running workout.
type Running struct {
	Base
}

func (Running) TrainingType() string { return "Running" }

func (r Running) Calories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH
}
