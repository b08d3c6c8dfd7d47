package cron

import (
	"testing"

	"github.com/reugn/go-cron/internal/assert"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	err := cronParseError("invalid expression length")
	assert.ErrorIs(t, err, ErrCronParse)
	assert.Equal(t, err.Error(),
		"parse cron expression: invalid expression length")

	err = illegalArgumentError("timestamp out of range: -8334632851201")
	assert.ErrorIs(t, err, ErrIllegalArgument)
	assert.Equal(t, err.Error(),
		"illegal argument: timestamp out of range: -8334632851201")
}
