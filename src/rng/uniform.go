package rng

import (
	"encoding/binary"
	"errors"
	"io"
)

// Uint32 returns one raw 32-bit draw from the entropy stream.
// Read errors mark the health monitor unhealthy before being returned.
func Uint32(r io.Reader, h *Health) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if h != nil {
			h.Set(false, "error fetching random bytes: "+err.Error())
		}
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Uint32n returns a uniform random uint32 in [0, limit), without modulo bias,
// using Lemire's nearly-divisionless method.
//
// The draw is treated as the fraction part of a 32.32 fixed-point number, so
// draw*limit (a 64-bit product) is a fixed-point value below limit whose
// integer part (the high 32 bits) is the candidate result. The low 32 bits
// decide whether the candidate landed in the biased tail of the draw space.
// The fast path compares that fraction against limit, a slight over-estimate
// of the exact rejection threshold, and avoids any division. The slow path
// computes the exact threshold, residue = (1<<32) % limit, within 32 bits via
// unsigned wraparound (-limit % limit), and resamples while the fraction
// falls below it. Each resample accepts with probability > 0.5, so the
// expected number of extra draws stays below one even for the worst limit.
//
// limit == 0 returns 0 and consumes no draw. The guard is explicit rather
// than left to the arithmetic; it also keeps the residue computation away
// from a division by zero.
func Uint32n(r io.Reader, h *Health, limit uint32) (uint32, error) {
	if limit == 0 {
		return 0, nil
	}

	draw, err := Uint32(r, h)
	if err != nil {
		return 0, err
	}

	product := uint64(draw) * uint64(limit)
	if uint32(product) < limit {
		residue := -limit % limit
		for uint32(product) < residue {
			draw, err = Uint32(r, h)
			if err != nil {
				return 0, err
			}
			product = uint64(draw) * uint64(limit)
		}
	}

	return uint32(product >> 32), nil
}

// UniformInt32 returns a uniform integer in [min, max] inclusive.
// Bias correction is delegated to Uint32n; the range size always fits a
// uint32 because the bounds are capped at +/- 1,000,000,000.
func UniformInt32(r io.Reader, h *Health, min int, max int) (int32, error) {
	// Bounds
	if min < -1000000000 {
		return 0, errors.New("the minimum value should not be lower than -1,000,000,000")
	}
	if min > 1000000000 {
		return 0, errors.New("the minimum value should not be higher than 1,000,000,000")
	}
	if max < -1000000000 {
		return 0, errors.New("the maximum value should not be lower than -1,000,000,000")
	}
	if max > 1000000000 {
		return 0, errors.New("the maximum value should not be higher than 1,000,000,000")
	}
	if min > max {
		return 0, errors.New("the minimum value should be smaller than or equal to the maximum value")
	}

	rangeSize := uint32(max - min + 1)
	v, err := Uint32n(r, h, rangeSize)
	if err != nil {
		return 0, errors.New("error fetching random bytes")
	}

	return int32(min) + int32(v), nil
}
