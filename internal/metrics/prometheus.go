package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"martianrobots/internal/mars"
)

// Run holds the metrics of a single simulation run on its own registry.
type Run struct {
	Registry *prometheus.Registry

	// RobotsTotal counts robots by outcome (safe or lost).
	RobotsTotal *prometheus.CounterVec

	// InstructionsTotal counts instructions by result (executed, skipped, saved).
	InstructionsTotal *prometheus.CounterVec

	// ScentMarks is the number of scent marks left on the grid.
	ScentMarks prometheus.Gauge
}

func NewRun() *Run {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Run{
		Registry: reg,
		RobotsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "martianrobots_robots_total",
				Help: "Total number of simulated robots",
			},
			[]string{"outcome"},
		),
		InstructionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "martianrobots_instructions_total",
				Help: "Total number of robot instructions",
			},
			[]string{"result"},
		),
		ScentMarks: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "martianrobots_scent_marks",
				Help: "Number of scent marks left by lost robots",
			},
		),
	}
}

// Observe records the stats of a finished simulation.
func (r *Run) Observe(st mars.Stats, scents int) {
	r.RobotsTotal.WithLabelValues("safe").Add(float64(st.Robots - st.Lost))
	r.RobotsTotal.WithLabelValues("lost").Add(float64(st.Lost))
	r.InstructionsTotal.WithLabelValues("executed").Add(float64(st.Executed))
	r.InstructionsTotal.WithLabelValues("skipped").Add(float64(st.Skipped))
	r.InstructionsTotal.WithLabelValues("saved").Add(float64(st.Saved))
	r.ScentMarks.Set(float64(scents))
}

// WriteTextfile writes the registry in the node exporter textfile format.
func (r *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
