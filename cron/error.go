package cron

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrCronParse       = errors.New("parse cron expression")
	ErrIllegalArgument = errors.New("illegal argument")
)

// cronParseError returns a cron parse error with a custom error message,
// which unwraps to ErrCronParse.
func cronParseError(message string) error {
	return fmt.Errorf("%w: %s", ErrCronParse, message)
}

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}
