package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourvns/render"
	"github.com/katalvlaran/tourvns/tsp"
)

func tableABC(t *testing.T) *tsp.DistanceMatrix {
	t.Helper()
	dm, err := tsp.NewDistanceMatrixFromRows([][]float64{
		{0, 12, 7.5},
		{12, 0, 3},
		{7.5, 3, 0},
	})
	require.NoError(t, err)
	return dm
}

func TestTourString(t *testing.T) {
	assert.Equal(t, "Final tour: 1 3 2 1", render.TourString(tsp.Tour{1, 3, 2, 1}))
	assert.Equal(t, "Final tour:", render.TourString(nil))
}

func TestNewReport_Stats(t *testing.T) {
	r, err := render.NewReport(tableABC(t), tsp.Tour{1, 3, 2, 1})
	require.NoError(t, err)

	require.Len(t, r.Legs, 3)
	assert.Equal(t, render.Leg{From: 1, To: 3, Distance: 7.5}, r.Legs[0])
	assert.Equal(t, render.Leg{From: 3, To: 2, Distance: 3}, r.Legs[1])
	assert.Equal(t, render.Leg{From: 2, To: 1, Distance: 12}, r.Legs[2])

	assert.Equal(t, 22.5, r.Total)
	assert.InDelta(t, 7.5, r.Mean, 1e-12)
	assert.InDelta(t, 4.5, r.StdDev, 1e-12) // sample stddev of {7.5, 3, 12}
	assert.Equal(t, 3.0, r.Min)
	assert.Equal(t, 12.0, r.Max)
}

func TestNewReport_CopiesTour(t *testing.T) {
	tour := tsp.Tour{1, 2, 3, 1}
	r, err := render.NewReport(tableABC(t), tour)
	require.NoError(t, err)
	tour[1] = 3
	assert.Equal(t, tsp.Tour{1, 2, 3, 1}, r.Tour)
}

func TestNewReport_Invalid(t *testing.T) {
	_, err := render.NewReport(nil, tsp.Tour{1, 2, 1})
	assert.ErrorIs(t, err, tsp.ErrNilMatrix)

	_, err = render.NewReport(tableABC(t), tsp.Tour{1, 2, 1})
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestReport_Write(t *testing.T) {
	r, err := render.NewReport(tableABC(t), tsp.Tour{1, 3, 2, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WithLabels([]string{"A", "B", "C"}).Write(&buf))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Final tour: 1 3 2 1", strings.TrimSpace(lines[0]))
	assert.Equal(t, []string{"1", "A", "C", "7.5"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "B", "A", "12"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"total", "22.5"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"max", "12"}, strings.Fields(lines[9]))
}

func TestReport_WriteFallsBackToIDs(t *testing.T) {
	r, err := render.NewReport(tableABC(t), tsp.Tour{1, 3, 2, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WithLabels([]string{"A"}).Write(&buf))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, []string{"1", "A", "3", "7.5"}, strings.Fields(lines[2]))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReport_WriteError(t *testing.T) {
	r, err := render.NewReport(tableABC(t), tsp.Tour{1, 2, 3, 1})
	require.NoError(t, err)
	assert.Error(t, r.Write(failWriter{}))
}
