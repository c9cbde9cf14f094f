package optimize

import (
	"fmt"
	"math"
)

// goldenSection is (3 - √5) / 2.
const goldenSection = 0.3819660112501051

var sqrtEps = math.Sqrt(2.220446049250313e-16)

// Bounded minimizes f on [lo, hi] with Brent's method: golden-section steps
// mixed with parabolic interpolation, stopping once the bracket is narrower
// than Tolerance around the best point.
//
// Brent never samples the interval ends, so once the search finishes both
// ends and x0 are probed too and the lowest of all candidates is returned.
// The result is therefore never worse than f(x0).
func Bounded(f func(float64) float64, lo, hi, x0 float64, s Settings) (Result, error) {
	if err := s.validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil objective", ErrInvalidProblem)
	}
	if !finite(lo) || !finite(hi) || lo > hi {
		return Result{}, fmt.Errorf("%w: bad interval [%v, %v]", ErrInvalidProblem, lo, hi)
	}
	if x0 < lo || x0 > hi || math.IsNaN(x0) {
		return Result{}, fmt.Errorf("%w: start %v outside [%v, %v]", ErrInvalidProblem, x0, lo, hi)
	}

	res := Result{}
	eval := func(x float64) (float64, error) {
		res.Evaluations++
		v := f(x)
		if !finite(v) {
			return v, fmt.Errorf("%w: f(%v) = %v", ErrBadObjective, x, v)
		}
		return v, nil
	}

	if lo == hi {
		v, err := eval(lo)
		if err != nil {
			return res, err
		}
		res.X, res.F, res.Converged = []float64{lo}, v, true
		return res, nil
	}

	a, b := lo, hi
	x := a + goldenSection*(b-a)
	w, v := x, x
	var d, e float64

	fx, err := eval(x)
	if err != nil {
		return res, err
	}
	fw, fv := fx, fx

	for res.Iterations = 0; res.Iterations < s.MaxIterations; res.Iterations++ {
		xm := 0.5 * (a + b)
		tol1 := sqrtEps*math.Abs(x) + s.Tolerance/3
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			res.Converged = true
			break
		}

		useGolden := true
		if math.Abs(e) > tol1 {
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = tol1 * sign(xm-x)
				}
				useGolden = false
			}
		}
		if useGolden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = goldenSection * e
		}

		u := x + sign(d)*math.Max(math.Abs(d), tol1)
		fu, err := eval(u)
		if err != nil {
			return res, err
		}

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
			continue
		}
		if u < x {
			a = u
		} else {
			b = u
		}
		if fu <= fw || w == x {
			v, fv = w, fw
			w, fw = u, fu
		} else if fu <= fv || v == x || v == w {
			v, fv = u, fu
		}
	}

	if !res.Converged {
		res.X, res.F = []float64{x}, fx
		return res, fmt.Errorf("%w: %d iterations on [%v, %v]", ErrNotConverged, res.Iterations, lo, hi)
	}

	best, fbest := x, fx
	for _, c := range []float64{lo, hi, x0} {
		fc, err := eval(c)
		if err != nil {
			return res, err
		}
		if fc < fbest {
			best, fbest = c, fc
		}
	}
	res.X, res.F = []float64{best}, fbest
	return res, nil
}

// sign maps 0 to +1 so a zero step still moves.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
