package builtin

import (
	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/abdul-hamid-achik/toolbox/packages/numbers"
)

func (r *Registry) registerNumbers() {
	r.Register("numbers.isEven", "isEven(num)", "Whether num % 2 is zero", unaryPredicate("numbers.isEven", numbers.IsEven))
	r.Register("numbers.isOdd", "isOdd(num)", "Whether num % 2 is non-zero", unaryPredicate("numbers.isOdd", numbers.IsOdd))
	r.Register("numbers.isPrime", "isPrime(num)", "Trial-division primality test", unaryPredicate("numbers.isPrime", numbers.IsPrime))
	r.Register("numbers.random", "random(min, max)", "Uniform integer in [min, max]", r.numRandom)
	r.Register("numbers.average", "average(...numbers)", "Arithmetic mean", numAverage)
	r.Register("numbers.gdc", "gdc(a, b)", "Greatest common divisor", binary("numbers.gdc", numbers.GDC))
	r.Register("numbers.gdcArray", "gdcArray(numbers)", "Greatest common divisor of a sequence", fold("numbers.gdcArray", numbers.GDCArray))
	r.Register("numbers.lcm", "lcm(a, b)", "Least common multiple", binary("numbers.lcm", numbers.LCM))
	r.Register("numbers.lcmArray", "lcmArray(numbers)", "Least common multiple of a sequence", fold("numbers.lcmArray", numbers.LCMArray))
}

func unaryPredicate(name string, fn func(float64) bool) Func {
	return func(args []any) (any, error) {
		num, err := newArgReader(name, args).number(0, "num")
		if err != nil {
			return nil, err
		}
		return fn(num), nil
	}
}

func binary(name string, fn func(a, b float64) (float64, error)) Func {
	return func(args []any) (any, error) {
		in := newArgReader(name, args)
		a, err := in.number(0, "a")
		if err != nil {
			return nil, err
		}
		b, err := in.number(1, "b")
		if err != nil {
			return nil, err
		}
		v, err := fn(a, b)
		return wrapResult(name, v, err)
	}
}

func fold(name string, fn func([]float64) (float64, error)) Func {
	return func(args []any) (any, error) {
		nums, err := newArgReader(name, args).numberList(0, "numbers")
		if err != nil {
			return nil, err
		}
		v, err := fn(nums)
		return wrapResult(name, v, err)
	}
}

func wrapResult(name string, v float64, err error) (any, error) {
	if err != nil {
		return nil, apperrors.WrapError(err, name)
	}
	return v, nil
}

func (r *Registry) numRandom(args []any) (any, error) {
	a := newArgReader("numbers.random", args)
	min, err := a.number(0, "min")
	if err != nil {
		return nil, err
	}
	max, err := a.number(1, "max")
	if err != nil {
		return nil, err
	}
	return numbers.RandomWith(r.random, min, max), nil
}

func numAverage(args []any) (any, error) {
	nums, err := newArgReader("numbers.average", args).rest(0, "numbers")
	if err != nil {
		return nil, err
	}
	return numbers.Average(nums...), nil
}
