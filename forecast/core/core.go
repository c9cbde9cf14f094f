package core

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// keepFirst returns the first n elements of a slice (or the whole slice if it
// is shorter).
func keepFirst[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// keepLast returns the last n elements of a slice (or the whole slice if it is
// shorter). It works for any element type thanks to Go generics.
func keepLast[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// KeepFirst is the exported wrapper for keepFirst.
func KeepFirst[T any](s []T, n int) []T {
	return keepFirst(s, n)
}

// KeepLast is the exported wrapper for keepLast to share slice logic across packages.
func KeepLast[T any](s []T, n int) []T {
	return keepLast(s, n)
}

func copySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// CopySlice exposes the defensive copy helper to other packages.
func CopySlice(src []float64) []float64 {
	return copySlice(src)
}

// Sequence returns start, start+1, … as float64 – n values in total. It is
// used both as the regressor of a trend fit and as a plot X axis.
func Sequence(start float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

/* -------------------------------------------------------------------------
   Numeric helpers
--------------------------------------------------------------------------*/

func clamp(value, min, max float64) float64 {
	if min == max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp exposes clamp to other packages.
func Clamp(value, min, max float64) float64 {
	return clamp(value, min, max)
}

/* -------------------------------------------------------------------------
   Validation helpers
--------------------------------------------------------------------------*/

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool { return isFinite(v) }

// FirstNonFinite returns the index of the first NaN/±Inf element, or -1.
func FirstNonFinite(data []float64) int {
	for i, v := range data {
		if !isFinite(v) {
			return i
		}
	}
	return -1
}

/* -------------------------------------------------------------------------
   Plotting utilities
--------------------------------------------------------------------------*/

type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Name,X,Y,Type,Timestamp\n")
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = strconv.FormatInt(d.Timestamp[i], 10)
			}
			// Shortest round-trip form, so tiny and huge values survive.
			fmt.Fprintf(&sb, "%s,%s,%s,%s,%s\n",
				d.Name, formatFloat(d.X[i]), formatFloat(d.Y[i]), d.Type, ts)
		}
	}
	return sb.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
