package training

// Shared conversion constants.
const (
	lenStep = 0.65 // meters covered per step
	mInKm   = 1000
	minInH  = 60
)

// Training exposes the metrics every workout variant can compute.
type Training interface {
	TrainingType() string
	// DurationH returns the workout duration in hours.
	DurationH() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
}

// CaloriesCounter is implemented by every complete workout variant. It is
// kept out of Training so the shared Base cannot pose as a full workout: a
// variant without its own calorie formula fails in Summary instead of
// inheriting a wrong one.
type CaloriesCounter interface {
	// Calories returns the estimated energy expenditure in kcal.
	Calories() float64
}

// Base carries the raw sensor readings shared by all workout variants. It
// implements the default distance and speed formulas but deliberately not
// CaloriesCounter and not TrainingType.
type Base struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (b Base) DurationH() float64 { return b.Duration }

func (b Base) Distance() float64 {
	return float64(b.Action) * lenStep / mInKm
}

func (b Base) MeanSpeed() float64 {
	return b.Distance() / b.Duration
}

// Summary assembles the info message for a finished training. It fails with
// UnimplementedError when the variant does not count calories.
func Summary(t Training) (InfoMessage, error) {
	cc, ok := t.(CaloriesCounter)
	if !ok {
		return InfoMessage{}, &UnimplementedError{TrainingType: t.TrainingType()}
	}
	return InfoMessage{
		TrainingType: t.TrainingType(),
		Duration:     t.DurationH(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     cc.Calories(),
	}, nil
}
