package numbers

import (
	"errors"
	"math"
	"math/rand/v2"
)

// IsEven reports whether num leaves no remainder when divided by 2.
func IsEven(num float64) bool {
	return math.Mod(num, 2) == 0
}

// IsOdd is the complement of IsEven; fractional values and NaN are odd.
func IsOdd(num float64) bool {
	return math.Mod(num, 2) != 0
}

// IsPrime trial-divides num by every integer from 2 through sqrt(num).
// Values below 2 are not prime. NaN is reported prime, and +Inf never
// finishes the trial division.
func IsPrime(num float64) bool {
	if num < 2 {
		return false
	}
	for i := 2.0; i <= math.Sqrt(num); i++ {
		if math.Mod(num, i) == 0 {
			return false
		}
	}
	return true
}

// Random returns floor(r*(max-min+1)) + min for a uniform r in [0, 1).
// For integer bounds with min <= max the result lies in [min, max].
func Random(min, max float64) float64 {
	return RandomWith(rand.Float64, min, max)
}

// RandomWith is Random drawing from next.
func RandomWith(next func() float64, min, max float64) float64 {
	return math.Floor(next()*(max-min+1)) + min
}

// Average returns the arithmetic mean of nums.
func Average(nums ...float64) float64 {
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums))
}

// ErrRecursionLimit is returned when Euclid's algorithm does not reach a
// zero remainder, which happens only for NaN or infinite inputs.
var ErrRecursionLimit = errors.New("recursion limit exceeded")

// maxEuclidSteps bounds the remainder sequence. Finite doubles reach zero in
// a few thousand steps at most.
const maxEuclidSteps = 1 << 14

// GDC computes the greatest common divisor with Euclid's algorithm on the
// raw remainder. Negative inputs may yield a negative divisor. NaN or
// infinite inputs never reach a zero remainder and fail with
// ErrRecursionLimit.
func GDC(a, b float64) (float64, error) {
	for i := 0; b != 0; i++ {
		if i == maxEuclidSteps {
			return math.NaN(), ErrRecursionLimit
		}
		a, b = b, math.Mod(a, b)
	}
	return a, nil
}

// GDCArray folds nums left to right through GDC.
func GDCArray(nums []float64) (float64, error) {
	return reduce(nums, GDC)
}

// LCM returns |a*b| / GDC(a, b). A zero divisor yields NaN or ±Inf.
func LCM(a, b float64) (float64, error) {
	d, err := GDC(a, b)
	if err != nil {
		return math.NaN(), err
	}
	return math.Abs(a*b) / d, nil
}

// LCMArray folds nums left to right through LCM.
func LCMArray(nums []float64) (float64, error) {
	return reduce(nums, LCM)
}

func reduce(nums []float64, fn func(a, b float64) (float64, error)) (float64, error) {
	if len(nums) == 0 {
		return math.NaN(), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		var err error
		if acc, err = fn(acc, n); err != nil {
			return math.NaN(), err
		}
	}
	return acc, nil
}
