package smoothing

import (
	"gonum.org/v1/gonum/stat"

	"github.com/evdnx/goses/forecast/core"
)

// InitialLevel estimates the level at time zero as the intercept of an
// ordinary least-squares trend line through the first min(window, len(y))
// observations, regressed on the time index 1..n.
//
// A single observation has no trend, so it is returned as is. An empty series
// yields 0.
func InitialLevel(y []float64, window int) float64 {
	head := core.KeepFirst(y, window)
	switch len(head) {
	case 0:
		return 0
	case 1:
		return head[0]
	}
	intercept, _ := stat.LinearRegression(core.Sequence(1, len(head)), head, nil, false)
	return intercept
}
