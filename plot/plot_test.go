package plot

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/goses/forecast/smoothing"
)

func TestSeries(t *testing.T) {
	data, err := Series([]float64{1, 2}, []float64{0, 1, 2, 2}, 1000, 60)
	require.NoError(t, err)
	require.Len(t, data, 2)

	assert.Equal(t, ObservedName, data[0].Name)
	assert.Equal(t, []float64{0, 1}, data[0].X)
	assert.Equal(t, []int64{1000, 1060}, data[0].Timestamp)

	assert.Equal(t, ForecastName, data[1].Name)
	assert.Equal(t, []float64{0, 1, 2, 3}, data[1].X)
	assert.Equal(t, []float64{0, 1, 2, 2}, data[1].Y)
	assert.Len(t, data[1].Timestamp, 4)
}

func TestSeries_NoTimestamps(t *testing.T) {
	data, err := Series([]float64{1}, []float64{1, 1}, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, data[0].Timestamp)
}

func TestSeries_Mismatch(t *testing.T) {
	_, err := Series([]float64{1, 2, 3}, []float64{1}, 0, 0)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestRender(t *testing.T) {
	data, err := Series([]float64{1, 2}, []float64{0, 1, 2}, 0, 0)
	require.NoError(t, err)

	js, err := Render(data, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(js, `[{"name":"observed"`))

	csv, err := Render(data, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1+2+3, len(strings.Split(strings.TrimSpace(csv), "\n")))

	table, err := Render(data, FormatPlain)
	require.NoError(t, err)
	assert.Equal(t, "t\tobserved\tforecast\n0\t1\t0\n1\t2\t1\n2\t\t2\n", table)

	_, err = Render(data, Format("svg"))
	assert.Error(t, err)
}

func TestModel(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	m, err := smoothing.NewSimpleExpSmoothing(y, smoothing.WithAlpha(1), smoothing.WithInitLevel(0), smoothing.WithHorizon(2))
	require.NoError(t, err)

	out, diags, err := Model(m, y, FormatPlain)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Contains(t, out, "6\t\t5\n")
}

func TestModel_CSVSmallUnits(t *testing.T) {
	y := []float64{2.5e-7, 3.1e-7, 2.9e-7}
	m, err := smoothing.NewSimpleExpSmoothing(y,
		smoothing.WithAlpha(0.5), smoothing.WithInitLevel(2.5e-7), smoothing.WithHorizon(2))
	require.NoError(t, err)

	out, _, err := Model(m, y, FormatCSV)
	require.NoError(t, err)
	want, err := m.Predict()
	require.NoError(t, err)

	var observed, forecast []float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 5)
		v, err := strconv.ParseFloat(fields[2], 64)
		require.NoError(t, err)
		switch fields[0] {
		case ObservedName:
			observed = append(observed, v)
		case ForecastName:
			forecast = append(forecast, v)
		}
	}
	assert.Equal(t, y, observed)
	assert.Equal(t, want, forecast)
}

type failingForecaster struct{}

func (failingForecaster) Fit() ([]smoothing.Diagnostic, error) { return nil, smoothing.ErrFitFailure }
func (failingForecaster) Predict() ([]float64, error)          { return nil, smoothing.ErrNotFitted }

func TestModel_FitError(t *testing.T) {
	_, _, err := Model(failingForecaster{}, []float64{1}, FormatJSON)
	assert.True(t, errors.Is(err, smoothing.ErrFitFailure))
}
