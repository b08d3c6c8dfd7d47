package cron

import (
	"math/bits"
	"strconv"
)

// nextSetBit returns the index of the lowest bit set in mask at or above
// from, or -1 if no such bit exists.
func nextSetBit(mask uint64, from int) int {
	cleared := (mask >> uint(from)) << uint(from)
	i := bits.TrailingZeros64(cleared)
	if i == 64 {
		return -1
	}
	return i
}

// rangeMask sets the bits for every value in [from, to] of the field's
// domain. A reversed pair wraps around the end of the domain, so 50-10 on
// minutes covers 50-59 and 0-10.
func rangeMask(from, to int, b bounds) uint64 {
	var mask uint64
	if from <= to {
		for v := from; v <= to; v++ {
			mask |= b.bit(v)
		}
		return mask
	}
	for v := from; v <= b.max; v++ {
		mask |= b.bit(v)
	}
	for v := b.min; v <= to; v++ {
		mask |= b.bit(v)
	}
	return mask
}

// stepMask sets the bits for every step-th value of the wrap-aware sequence
// from..to, starting with from itself.
func stepMask(from, to, step int, b bounds) uint64 {
	var mask uint64
	if from <= to {
		for v := from; v <= to; v += step {
			mask |= b.bit(v)
		}
		return mask
	}
	i := 0
	for v := from; v <= b.max; v++ {
		if i%step == 0 {
			mask |= b.bit(v)
		}
		i++
	}
	for v := b.min; v <= to; v++ {
		if i%step == 0 {
			mask |= b.bit(v)
		}
		i++
	}
	return mask
}

// parseUint parses a non-negative decimal integer with no sign or other
// non-digit characters.
func parseUint(s string) (int, error) {
	if s == "" {
		return 0, cronParseError("empty numeric value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, cronParseError("invalid numeric value: " + s)
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, cronParseError("invalid numeric value: " + s)
	}
	return i, nil
}

// floorMod returns ts modulo m with a non-negative result.
func floorMod(ts, m int64) int64 {
	return ((ts % m) + m) % m
}
