package optimize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

const (
	lbfgsMemory    = 5
	armijoC1       = 1e-4
	maxBacktracks  = 60
	curvatureFloor = 1e-10
)

// LBFGSB minimizes p.Func inside the box [p.Lower, p.Upper] starting from x0
// (projected into the box first).
//
// Each step builds a limited-memory BFGS direction over the coordinates that
// are not pinned against a bound, then backtracks along the projected path
// until the Armijo condition holds. Gradients come from central differences.
// Coordinates are scaled by max(1, |x0[i]|) internally so that a level in the
// thousands and a weight in [0,1] are searched on comparable footing.
//
// The search stops when the infinity norm of the projected gradient falls
// below Tolerance·(1+|f|), when a quasi-Newton step improves f by a relative
// amount below Tolerance, or when not even a steepest-descent step can lower
// f any further. Running out of iterations returns ErrNotConverged.
func LBFGSB(p Problem, x0 []float64, s Settings) (Result, error) {
	if err := s.validate(); err != nil {
		return Result{}, err
	}
	n := len(x0)
	if err := p.validate(n); err != nil {
		return Result{}, err
	}
	for i, v := range x0 {
		if math.IsNaN(v) {
			return Result{}, fmt.Errorf("%w: start coordinate %d is NaN", ErrInvalidProblem, i)
		}
	}

	scale := make([]float64, n)
	lower := make([]float64, n)
	upper := make([]float64, n)
	z := make([]float64, n)
	for i := range x0 {
		scale[i] = 1
		if finite(x0[i]) {
			scale[i] = math.Max(1, math.Abs(x0[i]))
		}
		lower[i] = p.Lower[i] / scale[i]
		upper[i] = p.Upper[i] / scale[i]
		z[i] = x0[i] / scale[i]
	}
	project(z, lower, upper)

	res := Result{}
	xbuf := make([]float64, n)
	objective := func(z []float64) float64 {
		res.Evaluations++
		floats.MulTo(xbuf, z, scale)
		return p.Func(xbuf)
	}
	fdSettings := &fd.Settings{Formula: fd.Central}
	gradient := func(dst, z []float64) error {
		fd.Gradient(dst, objective, z, fdSettings)
		if floats.HasNaN(dst) || !finite(floats.Norm(dst, math.Inf(1))) {
			return fmt.Errorf("%w: gradient at %v", ErrBadObjective, unscale(z, scale))
		}
		return nil
	}

	f := objective(z)
	if !finite(f) {
		return res, fmt.Errorf("%w: f(%v) = %v", ErrBadObjective, unscale(z, scale), f)
	}
	g := make([]float64, n)
	if err := gradient(g, z); err != nil {
		return res, err
	}

	var mem history
	pg := make([]float64, n)
	zNew := make([]float64, n)
	gNew := make([]float64, n)
	sv := make([]float64, n)
	yv := make([]float64, n)

	for res.Iterations = 0; res.Iterations < s.MaxIterations; res.Iterations++ {
		free := projectedGradient(pg, z, g, lower, upper)
		if floats.Norm(pg, math.Inf(1)) <= s.Tolerance*(1+math.Abs(f)) {
			res.Converged = true
			break
		}

		quasiNewton := mem.size() > 0
		var d []float64
		if quasiNewton {
			d = mem.direction(g, free)
			if floats.Dot(d, pg) >= 0 {
				quasiNewton = false
			}
		}
		if !quasiNewton {
			d = make([]float64, n)
			floats.ScaleTo(d, -1/math.Max(1, floats.Norm(pg, 2)), pg)
		}

		fNew, ok := lineSearch(zNew, z, d, g, f, lower, upper, objective)
		if !ok {
			if quasiNewton {
				mem.reset()
				continue
			}
			// Steepest descent cannot lower f: stationary up to rounding.
			res.Converged = true
			break
		}
		if err := gradient(gNew, zNew); err != nil {
			return res, err
		}

		floats.SubTo(sv, zNew, z)
		floats.SubTo(yv, gNew, g)
		if sy := floats.Dot(sv, yv); sy > curvatureFloor*floats.Dot(yv, yv) {
			mem.push(sv, yv, sy)
		}

		rel := (f - fNew) / math.Max(math.Max(math.Abs(f), math.Abs(fNew)), 1)
		copy(z, zNew)
		copy(g, gNew)
		f = fNew
		if quasiNewton && rel <= s.Tolerance {
			res.Iterations++
			res.Converged = true
			break
		}
	}

	res.X, res.F = unscale(z, scale), f
	if !res.Converged {
		return res, fmt.Errorf("%w: %d iterations, f=%v", ErrNotConverged, res.Iterations, f)
	}
	return res, nil
}

// projectedGradient zeroes the components of g that push a coordinate out of
// the box and reports which coordinates remain free.
func projectedGradient(dst, x, g, lower, upper []float64) []bool {
	free := make([]bool, len(x))
	for i := range x {
		pinned := (x[i] <= lower[i] && g[i] > 0) || (x[i] >= upper[i] && g[i] < 0)
		free[i] = !pinned
		if pinned {
			dst[i] = 0
		} else {
			dst[i] = g[i]
		}
	}
	return free
}

// lineSearch backtracks from a unit step along d, projecting every trial
// point into the box. Trial points with a non-finite objective count as
// rejected.
func lineSearch(dst, x, d, g []float64, f float64, lower, upper []float64, obj func([]float64) float64) (float64, bool) {
	step := make([]float64, len(x))
	t := 1.0
	for k := 0; k < maxBacktracks; k++ {
		floats.AddScaledTo(dst, x, t, d)
		project(dst, lower, upper)
		floats.SubTo(step, dst, x)
		if floats.Norm(step, math.Inf(1)) == 0 {
			return f, false
		}
		ft := obj(dst)
		if finite(ft) && ft < f && ft <= f+armijoC1*floats.Dot(g, step) {
			return ft, true
		}
		t *= 0.5
	}
	return f, false
}

func unscale(z, scale []float64) []float64 {
	x := make([]float64, len(z))
	floats.MulTo(x, z, scale)
	return x
}

/* ---------- limited-memory curvature pairs ---------- */

type history struct {
	s, y [][]float64
	rho  []float64
}

func (h *history) size() int { return len(h.s) }

func (h *history) reset() {
	h.s, h.y, h.rho = nil, nil, nil
}

func (h *history) push(s, y []float64, sy float64) {
	if len(h.s) == lbfgsMemory {
		h.s, h.y, h.rho = h.s[1:], h.y[1:], h.rho[1:]
	}
	h.s = append(h.s, append([]float64(nil), s...))
	h.y = append(h.y, append([]float64(nil), y...))
	h.rho = append(h.rho, 1/sy)
}

// direction runs the two-loop recursion on the free coordinates of g and
// returns the descent direction -H·g (zero on pinned coordinates).
func (h *history) direction(g []float64, free []bool) []float64 {
	n := len(g)
	mask := func(v []float64) []float64 {
		out := make([]float64, n)
		for i := range v {
			if free[i] {
				out[i] = v[i]
			}
		}
		return out
	}

	q := mask(g)
	k := len(h.s)
	alpha := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		si := mask(h.s[i])
		alpha[i] = h.rho[i] * floats.Dot(si, q)
		floats.AddScaled(q, -alpha[i], mask(h.y[i]))
	}

	gamma := 1.0
	sLast, yLast := mask(h.s[k-1]), mask(h.y[k-1])
	if sy, yy := floats.Dot(sLast, yLast), floats.Dot(yLast, yLast); sy > 0 && yy > 0 {
		gamma = sy / yy
	}
	floats.Scale(gamma, q)

	for i := 0; i < k; i++ {
		beta := h.rho[i] * floats.Dot(mask(h.y[i]), q)
		floats.AddScaled(q, alpha[i]-beta, mask(h.s[i]))
	}
	floats.Scale(-1, q)
	return mask(q)
}
