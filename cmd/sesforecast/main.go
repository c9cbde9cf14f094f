// Command sesforecast fits a simple exponential smoothing model to a series
// of numbers and prints the in-sample fit followed by the forecast.
//
//	sesforecast --input sales.txt --horizon 6 --format json
//	echo "1 2 3 4 5" | sesforecast --alpha 0.5
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/evdnx/goses/config"
	"github.com/evdnx/goses/forecast/smoothing"
	"github.com/evdnx/goses/internal/logging"
	"github.com/evdnx/goses/plot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	def := config.DefaultConfig()
	flags := pflag.NewFlagSet("sesforecast", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	input := flags.StringP("input", "i", "-", "file holding the observations, - for stdin")
	configFile := flags.StringP("config", "c", "", "optional config file (yaml, toml or json)")
	horizon := flags.IntP("horizon", "H", 0, "periods to forecast (0 uses default_horizon)")
	alpha := flags.Float64("alpha", 0, "fix the smoothing weight instead of estimating it")
	initLevel := flags.Float64("init-level", 0, "fix the initial level instead of estimating it")
	format := flags.StringP("format", "f", string(plot.FormatPlain), "output format: plain, csv or json")
	logLevel := flags.String("log-level", "info", "log level")
	logFormat := flags.String("log-format", "text", "log format: text or json")
	flags.Int("max_iterations", def.MaxIterations, "bound on optimizer steps")
	flags.Float64("tolerance", def.Tolerance, "optimizer convergence threshold")
	flags.String("fit_policy", string(def.FitPolicy), "joint or heuristic")
	flags.Int("heuristic_window", def.HeuristicWindow, "observations used for the initial level estimate")
	flags.Int("default_horizon", def.DefaultHorizon, "horizon used when --horizon is 0")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.NewWithOutput(stderr, *logLevel, *logFormat)

	v, err := config.NewViper(*configFile)
	if err != nil {
		logger.WithError(err).Error("cannot load configuration")
		return 1
	}
	for _, key := range []string{"max_iterations", "tolerance", "fit_policy", "heuristic_window", "default_horizon"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			logger.WithError(err).Error("cannot bind flag")
			return 1
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return 1
	}

	y, err := readSeries(*input, stdin)
	if err != nil {
		logger.WithError(err).Error("cannot read observations")
		return 1
	}

	opts := []smoothing.Option{smoothing.WithConfig(cfg)}
	if *horizon != 0 {
		opts = append(opts, smoothing.WithHorizon(*horizon))
	}
	if flags.Changed("alpha") {
		opts = append(opts, smoothing.WithAlpha(*alpha))
	}
	if flags.Changed("init-level") {
		opts = append(opts, smoothing.WithInitLevel(*initLevel))
	}
	model, err := smoothing.NewSimpleExpSmoothing(y, opts...)
	if err != nil {
		logger.WithError(err).Error("cannot build model")
		return 1
	}

	out, diags, err := plot.Model(model, y, plot.Format(strings.ToLower(*format)))
	logging.LogDiagnostics(logger, diags)
	if err != nil {
		logger.WithError(err).Error("forecast failed")
		return 1
	}
	if sse, err := model.SSE(); err == nil {
		logger.WithFields(logrus.Fields{
			"alpha":      model.Alpha().String(),
			"init_level": model.InitLevel().String(),
			"sse":        sse,
			"horizon":    model.Horizon(),
		}).Info("model fitted")
	}

	if _, err := io.WriteString(stdout, out); err != nil {
		logger.WithError(err).Error("cannot write output")
		return 1
	}
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(stdout)
	}
	return 0
}

// readSeries reads numbers separated by commas, semicolons or whitespace. A
// non-numeric first line is taken as a header and skipped.
func readSeries(path string, stdin io.Reader) ([]float64, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseSeries(string(raw))
}

func parseSeries(text string) ([]float64, error) {
	split := func(r rune) bool { return r == ',' || r == ';' || unicode.IsSpace(r) }

	var out []float64
	for n, line := range strings.Split(text, "\n") {
		fields := strings.FieldsFunc(line, split)
		vals := make([]float64, 0, len(fields))
		var bad error
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				bad = fmt.Errorf("line %d: %q is not a number", n+1, tok)
				break
			}
			vals = append(vals, v)
		}
		if bad != nil {
			if n == 0 {
				continue
			}
			return nil, bad
		}
		out = append(out, vals...)
	}
	return out, nil
}
