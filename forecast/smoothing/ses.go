package smoothing

import (
	"fmt"

	"github.com/evdnx/goses/config"
	"github.com/evdnx/goses/forecast/core"
)

// Forecaster is the capability shared by every smoothing model: estimate
// whatever parameters are unset, then project the series forward.
type Forecaster interface {
	Fit() ([]Diagnostic, error)
	Predict() ([]float64, error)
}

var _ Forecaster = (*SimpleExpSmoothing)(nil)

// SimpleExpSmoothing forecasts a flat continuation of a recursively smoothed
// level.
//
// A model is not safe for concurrent use: Fit overwrites alpha and the
// initial level in place. Fit independent models instead.
type SimpleExpSmoothing struct {
	y       []float64
	horizon int
	config  config.SmoothingConfig

	// requested holds the caller's parameters; alpha/initLevel hold the
	// values in effect, which Fit fills in.
	requestedAlpha Param
	requestedLevel Param
	alpha          Param
	initLevel      Param
	fitted         bool
}

/*
   Constructors
   ------------

   NewSimpleExpSmoothing builds a model from functional options; anything not
   given falls back to the default configuration with alpha and the initial
   level left for Fit.

   NewSimpleExpSmoothingWithParams takes every setting explicitly.
*/

// NewSimpleExpSmoothing creates a model over the observations y.
func NewSimpleExpSmoothing(y []float64, opts ...Option) (*SimpleExpSmoothing, error) {
	o := options{
		alpha:     Auto(),
		initLevel: Auto(),
		config:    config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	h := o.config.DefaultHorizon
	if o.horizonSet {
		h = o.horizon
	}
	return NewSimpleExpSmoothingWithParams(y, h, o.alpha, o.initLevel, o.config)
}

// NewSimpleExpSmoothingWithParams creates a model with an explicit horizon,
// parameters and configuration. The observations are copied.
func NewSimpleExpSmoothingWithParams(y []float64, h int, alpha, initLevel Param, cfg config.SmoothingConfig) (*SimpleExpSmoothing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validate(y, h, alpha, initLevel); err != nil {
		return nil, err
	}
	return &SimpleExpSmoothing{
		y:              core.CopySlice(y),
		horizon:        h,
		config:         cfg,
		requestedAlpha: alpha,
		requestedLevel: initLevel,
		alpha:          alpha,
		initLevel:      initLevel,
	}, nil
}

/* ---------- Functional options ---------- */

type options struct {
	horizon    int
	horizonSet bool
	alpha      Param
	initLevel  Param
	config     config.SmoothingConfig
}

// Option configures a SimpleExpSmoothing at construction.
type Option func(*options)

// WithHorizon sets the number of periods forecast past the last observation.
func WithHorizon(h int) Option {
	return func(o *options) { o.horizon, o.horizonSet = h, true }
}

// WithAlpha fixes the smoothing weight so Fit leaves it alone.
func WithAlpha(alpha float64) Option {
	return func(o *options) { o.alpha = Fixed(alpha) }
}

// WithInitLevel fixes the starting level so Fit leaves it alone.
func WithInitLevel(level float64) Option {
	return func(o *options) { o.initLevel = Fixed(level) }
}

// WithConfig replaces the optimizer and fit-policy configuration.
func WithConfig(cfg config.SmoothingConfig) Option {
	return func(o *options) { o.config = cfg }
}

/* ---------- Public API ---------- */

// Predict returns len(y)+h values: the in-sample fitted levels followed by
// the flat out-of-sample forecast. It fails with ErrNotFitted while alpha or
// the initial level is still unset.
func (m *SimpleExpSmoothing) Predict() ([]float64, error) {
	res, err := m.Result()
	if err != nil {
		return nil, err
	}
	return res.Forecast, nil
}

// Result evaluates the recursion with the current parameters.
func (m *SimpleExpSmoothing) Result() (Result, error) {
	alpha, okA := m.alpha.Value()
	level, okL := m.initLevel.Value()
	if !okA || !okL {
		return Result{}, fmt.Errorf("%w: alpha=%s init_level=%s", ErrNotFitted, m.alpha, m.initLevel)
	}
	return Smooth(m.y, alpha, level, m.horizon)
}

// SSE returns the in-sample sum of squared errors for the current parameters.
func (m *SimpleExpSmoothing) SSE() (float64, error) {
	res, err := m.Result()
	if err != nil {
		return 0, err
	}
	return res.SSE, nil
}

func (m *SimpleExpSmoothing) Alpha() Param     { return m.alpha }
func (m *SimpleExpSmoothing) InitLevel() Param { return m.initLevel }
func (m *SimpleExpSmoothing) Horizon() int     { return m.horizon }
func (m *SimpleExpSmoothing) Fitted() bool     { return m.fitted }

// Observations returns a copy of the series the model was built on.
func (m *SimpleExpSmoothing) Observations() []float64 {
	return core.CopySlice(m.y)
}

// Config returns the configuration the model was built with.
func (m *SimpleExpSmoothing) Config() config.SmoothingConfig { return m.config }
