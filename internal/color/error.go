package color

import "fmt"

// Error is a color parsing or lookup failure. It is the only error kind
// returned by the notation core; causes are distinguished by Message.
type Error struct {
	Message string
}

// Errorf creates an *Error with a formatted message.
func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}
