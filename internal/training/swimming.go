package training

const (
	swimmingLenStep                  = 1.38 // meters covered per stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout.
type Swimming struct {
	Base
	LengthPool float64 // pool length, meters
	CountPool  int     // laps swum
}

func (Swimming) TrainingType() string { return "Swimming" }

// Distance uses the stroke length instead of the land step length.
func (s Swimming) Distance() float64 {
	return float64(s.Action) * swimmingLenStep / mInKm
}

// MeanSpeed is derived from the pool parameters only; the stroke count does
// not contribute.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}
