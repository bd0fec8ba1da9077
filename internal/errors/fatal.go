package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// fatalError is an error that should be printed to the user, then the program
// should exit with an error code.
type fatalError string

func (e fatalError) Error() string {
	return string(e)
}

// IsFatal returns false if err is nil or not a fatal error.
func IsFatal(err error) bool {
	var fatal fatalError
	return errors.As(err, &fatal)
}

// Fatal returns an error that is marked fatal.
func Fatal(s string) error {
	return errors.WithStack(fatalError(s))
}

// Fatalf returns an error that is marked fatal.
func Fatalf(s string, data ...interface{}) error {
	return errors.WithStack(fatalError(fmt.Sprintf(s, data...)))
}
