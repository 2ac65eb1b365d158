package status

import (
	"fmt"
)

// Error pairs a cause with the status it should be reported as.
type Error struct {
	cause  error
	Status Code
}

func NewError(err error, status Code) Error {
	return Error{cause: err, Status: status}
}

func (e Error) Error() string {
	cause := ""
	if e.cause != nil {
		cause = e.cause.Error()
	}

	return fmt.Sprintf(
		"%d %s: %q", uint(e.Status), e.Status.ReasonPhrase(), cause,
	)
}

func (e Error) Cause() error {
	return e.cause
}

func (e Error) Unwrap() error {
	return e.cause
}
