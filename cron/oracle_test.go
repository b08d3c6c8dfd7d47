package cron_test

import (
	"testing"
	"time"

	"github.com/gorhill/cronexpr"
	robfig "github.com/robfig/cron/v3"

	"github.com/reugn/go-cron/cron"
	"github.com/reugn/go-cron/internal/assert"
)

// Expressions in the common dialect understood by this package,
// robfig/cron and gorhill/cronexpr.
var oracleTests = []struct {
	expression string
	steps      int
}{
	{"* * * * *", 20},
	{"*/10 * * * *", 20},
	{"30 8 * * *", 20},
	{"0 0 1 1 *", 20},
	{"0 9-17 * * 1-5", 20},
	{"5 4 * * SUN", 20},
	{"0 12 1,15 * *", 20},
	{"0 0 13 * 5", 20},
	// robfig/cron gives up after five years, which the 2096 to 2104 leap
	// day gap exceeds.
	{"0 0 29 2 *", 15},
}

func TestNextAgainstRobfig(t *testing.T) {
	t.Parallel()
	for _, tt := range oracleTests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			s := cron.MustParse(tt.expression)
			oracle, err := robfig.ParseStandard(tt.expression)
			assert.IsNil(t, err)

			ts := unix(2021, time.January, 1, 0, 0, 0)
			for i := 0; i < tt.steps; i++ {
				next, ok := s.NextAfter(ts)
				assert.True(t, ok)

				want := oracle.Next(time.Unix(ts, 0).UTC()).Unix()
				assert.Equal(t, next, want)
				ts = next
			}
		})
	}
}

func TestNextAgainstCronexpr(t *testing.T) {
	t.Parallel()
	for _, tt := range oracleTests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			s := cron.MustParse(tt.expression)
			oracle, err := cronexpr.Parse(tt.expression)
			assert.IsNil(t, err)

			ts := unix(2021, time.January, 1, 0, 0, 0)
			for i := 0; i < tt.steps; i++ {
				next, ok := s.NextAfter(ts)
				assert.True(t, ok)

				want := oracle.Next(time.Unix(ts, 0).UTC()).Unix()
				assert.Equal(t, next, want)
				ts = next
			}
		})
	}
}
