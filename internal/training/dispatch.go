package training

import "fmt"

// Activity codes sensors send in front of each parameter package.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// UnknownActivityError reports a package whose activity code is not one
// of CodeRunning, CodeWalking, CodeSwimming.
type UnknownActivityError struct {
	Code string
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("unknown activity type %q", e.Code)
}

// ArityError reports a package whose parameter count does not match the
// activity's constructor.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("activity %s expects %d parameters, got %d", e.Code, e.Want, e.Got)
}

// ReadPackage constructs the session variant matching the activity code,
// spreading data positionally into the constructor: action, duration,
// weight, then the variant extras (height for WLK; pool length and pool
// count for SWM). Arity is checked before construction; parameter values
// are not range-checked.
func ReadPackage(code string, data []float64) (Session, error) {
	switch code {
	case CodeRunning:
		if len(data) != 3 {
			return nil, &ArityError{Code: code, Want: 3, Got: len(data)}
		}
		return NewRunning(int(data[0]), data[1], data[2]), nil
	case CodeWalking:
		if len(data) != 4 {
			return nil, &ArityError{Code: code, Want: 4, Got: len(data)}
		}
		return NewSportsWalking(int(data[0]), data[1], data[2], data[3]), nil
	case CodeSwimming:
		if len(data) != 5 {
			return nil, &ArityError{Code: code, Want: 5, Got: len(data)}
		}
		return NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4])), nil
	default:
		return nil, &UnknownActivityError{Code: code}
	}
}
