// Package render formats tours for people: a one-line tour string and a
// per-leg report with summary statistics.
//
// The package never logs; output goes to the io.Writer the caller supplies.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tourvns/tsp"
)

// TourString renders a closed tour as "Final tour: 1 3 2 1".
func TourString(tour tsp.Tour) string {
	var sb strings.Builder
	sb.WriteString("Final tour:")
	for _, c := range tour {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// Leg is one hop of a tour.
type Leg struct {
	From, To int
	Distance float64
}

// Report summarizes a tour leg by leg.
// Mean and StdDev are the sample statistics of the leg distances.
type Report struct {
	Tour   tsp.Tour
	Legs   []Leg
	Labels []string

	Total  float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// NewReport validates tour against dm and computes its legs and statistics.
// Returns tsp.ErrNilMatrix or tsp.ErrInvalidInput for bad input.
func NewReport(dm *tsp.DistanceMatrix, tour tsp.Tour) (*Report, error) {
	if dm == nil {
		return nil, tsp.ErrNilMatrix
	}
	if err := tsp.ValidateTour(tour, dm.Cities()); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	var (
		n    = len(tour) - 1
		legs = make([]Leg, n)
		xs   = make([]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		d := dm.Distance(tour[i], tour[i+1])
		legs[i] = Leg{From: tour[i], To: tour[i+1], Distance: d}
		xs[i] = d
	}
	mean, std := stat.MeanStdDev(xs, nil)

	return &Report{
		Tour:   tour.Clone(),
		Legs:   legs,
		Total:  tsp.TotalDistance(dm, tour),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}, nil
}

// WithLabels attaches city names; labels[c-1] names city c. Missing names
// fall back to the numeric id.
func (r *Report) WithLabels(labels []string) *Report {
	r.Labels = labels
	return r
}

func (r *Report) name(c int) string {
	if c >= 1 && c <= len(r.Labels) && r.Labels[c-1] != "" {
		return r.Labels[c-1]
	}
	return strconv.Itoa(c)
}

// Write prints the tour line, a leg table and the summary to w.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, TourString(r.Tour))
	fmt.Fprintln(tw, "#\tfrom\tto\tdistance")
	for i, l := range r.Legs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\n", i+1, r.name(l.From), r.name(l.To), l.Distance)
	}
	fmt.Fprintf(tw, "total\t\t\t%g\n", r.Total)
	fmt.Fprintf(tw, "mean\t\t\t%.4g\n", r.Mean)
	fmt.Fprintf(tw, "stddev\t\t\t%.4g\n", r.StdDev)
	fmt.Fprintf(tw, "min\t\t\t%g\n", r.Min)
	fmt.Fprintf(tw, "max\t\t\t%g\n", r.Max)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
