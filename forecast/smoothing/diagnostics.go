package smoothing

import "fmt"

// Parameter names used in diagnostics.
const (
	ParamAlpha     = "alpha"
	ParamInitLevel = "init_level"
)

// Diagnostic is an advisory notice produced by Fit, one per parameter that
// was chosen automatically. It never signals failure.
type Diagnostic struct {
	Parameter string
	Value     float64
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s=%g: %s", d.Parameter, d.Value, d.Message)
}
