package training

// Supported workout codes.
const (
	TypeRunning  = "RUN"
	TypeSwimming = "SWM"
	TypeWalking  = "WLK"
)

// WorkoutTypes returns the supported workout codes in declared order. Error
// messages rely on this order being stable.
func WorkoutTypes() []string {
	return []string{TypeRunning, TypeSwimming, TypeWalking}
}

// New builds the training variant for a workout code from its raw sensor
// values. Values are positional: action, duration (hours) and weight (kg)
// first, then the variant-specific readings.
func New(workoutType string, data []float64) (Training, error) {
	switch workoutType {
	case TypeRunning:
		if len(data) != 3 {
			return nil, &ArityError{WorkoutType: workoutType, Want: 3, Got: len(data)}
		}
		return Running{Base: newBase(data)}, nil
	case TypeSwimming:
		if len(data) != 5 {
			return nil, &ArityError{WorkoutType: workoutType, Want: 5, Got: len(data)}
		}
		return Swimming{
			Base:       newBase(data),
			LengthPool: data[3],
			CountPool:  int(data[4]),
		}, nil
	case TypeWalking:
		if len(data) != 4 {
			return nil, &ArityError{WorkoutType: workoutType, Want: 4, Got: len(data)}
		}
		return SportsWalking{Base: newBase(data), Height: data[3]}, nil
	default:
		return nil, &UnknownTypeError{WorkoutType: workoutType}
	}
}

func newBase(data []float64) Base {
	return Base{
		Action:   int(data[0]),
		Duration: data[1],
		Weight:   data[2],
	}
}
