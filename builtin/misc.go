/*
File   : builtin/misc.go
Package: builtin

range and rand. range(start, end[, step]) builds the same INT sequence
`for` iterates, exposed as a value so foreach can walk it explicitly;
rand draws a pseudo-random Number, either a float in [0,1) with no
arguments or an INT in [lo, hi] with two.
*/
package builtin

import (
	"io"
	"math/rand"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

func init() {
	register("range", []string{"start", "end"}, rangeFn)
	register("rand", nil, randFn)
}

func asInt(name string, idx int, v value.Value) (int64, *errors.Error) {
	n, ok := v.(*value.Number)
	if !ok || n.Sub != value.SubInt {
		return 0, typeError(name, idx, "INT", v)
	}
	return n.I, nil
}

func rangeFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError("range", 2, len(args))
	}
	start, serr := asInt("range", 1, args[0])
	if serr != nil {
		return nil, serr
	}
	end, eerr := asInt("range", 2, args[1])
	if eerr != nil {
		return nil, eerr
	}
	step := int64(1)
	if start > end {
		step = -1
	}
	if len(args) == 3 {
		s, serr := asInt("range", 3, args[2])
		if serr != nil {
			return nil, serr
		}
		if s == 0 {
			return nil, errors.New(errors.InvalidArgumentSet, source.Span{}, "range: step must not be 0")
		}
		step = s
	}
	var out []value.Value
	if step > 0 {
		for i := start; i <= end; i += step {
			out = append(out, value.NewInt(i))
		}
	} else {
		for i := start; i >= end; i += step {
			out = append(out, value.NewInt(i))
		}
	}
	return value.NewList(out), nil
}

// rand with no arguments returns a FLT in [0,1); with two INT
// arguments returns an inclusive INT in [lo, hi].
func randFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	switch len(args) {
	case 0:
		return value.NewFlt(rand.Float64()), nil
	case 2:
		lo, lerr := asInt("rand", 1, args[0])
		if lerr != nil {
			return nil, lerr
		}
		hi, herr := asInt("rand", 2, args[1])
		if herr != nil {
			return nil, herr
		}
		if hi < lo {
			return nil, errors.New(errors.InvalidArgumentSet, source.Span{}, "rand: upper bound %d is less than lower bound %d", hi, lo)
		}
		return value.NewInt(lo + rand.Int63n(hi-lo+1)), nil
	default:
		return nil, arityError("rand", 2, len(args))
	}
}
