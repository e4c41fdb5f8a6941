package training

const (
	kmhInMsec = 0.278
	cmInM     = 100

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a sports walking workout.
type SportsWalking struct {
	Base
	Height float64 // cm
}

func (SportsWalking) TrainingType() string { return "SportsWalking" }

// Calories divides by Height; a zero height yields ±Inf/NaN rather than an
// error, matching the untreated zero-duration case in Base.MeanSpeed.
func (w SportsWalking) Calories() float64 {
	speedMsec := w.MeanSpeed() * kmhInMsec
	return (walkingCaloriesWeightMultiplier*w.Weight +
		speedMsec*speedMsec/(w.Height/cmInM)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * minInH
}
