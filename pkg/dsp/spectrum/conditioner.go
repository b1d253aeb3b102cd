package spectrum

import "math"

// Condition converts raw magnitudes to decibels and normalizes the result
// against its loudest band, so the maximum finite value is exactly 0 dB and
// every other finite value is negative.
//
// A zero magnitude converts to -Inf and stays -Inf through normalization;
// silent bands are meant to be visibly distinct in the output, not clamped
// away. The peak is taken over finite values only. When no finite value
// exists at all (total silence) there is nothing to normalize against and
// Condition returns ErrDegenerate instead of a lattice of NaNs.
//
// Pure function: same input, same output, nothing cached.
func Condition(mags []float64) ([]float64, error) {
	db := make([]float64, len(mags))
	peak := math.Inf(-1)
	finite := false

	for i, m := range mags {
		v := 20 * math.Log10(m)
		db[i] = v
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite = true
			if v > peak {
				peak = v
			}
		}
	}

	if !finite {
		return nil, ErrDegenerate
	}

	for i := range db {
		db[i] -= peak
	}
	return db, nil
}

// ConditionFloor conditions like Condition and then clamps every band below
// floorDB up to floorDB, giving renderers a finite bottom edge. floorDB must
// be negative to be useful; the 0 dB peak is never affected.
func ConditionFloor(mags []float64, floorDB float64) ([]float64, error) {
	db, err := Condition(mags)
	if err != nil {
		return nil, err
	}
	for i, v := range db {
		if v < floorDB {
			db[i] = floorDB
		}
	}
	return db, nil
}
