package peg

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder observes Parse invocations for a Grammar. It is nil-safe: every
// method tolerates a nil *Recorder so the recognizer never has to branch on
// whether telemetry is enabled. Telemetry is opt-in via WithRecorder; the
// core has no mandatory collaborators.
type Recorder struct {
	parses   *prometheus.CounterVec
	mismatch *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder builds a Recorder with its own metrics registered against reg.
// Pass prometheus.NewRegistry() for an isolated registry, or
// prometheus.DefaultRegisterer to expose metrics on the default /metrics
// handler.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	rec := &Recorder{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peg",
			Name:      "parses_total",
			Help:      "Number of Grammar.Parse invocations, by starting rule and outcome.",
		}, []string{"rule", "outcome"}),
		mismatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peg",
			Name:      "rule_mismatches_total",
			Help:      "Number of rule-level mismatches observed during recognition, by rule.",
		}, []string{"rule"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "peg",
			Name:      "parse_duration_seconds",
			Help:      "Wall time spent in Grammar.Parse, by starting rule.",
		}, []string{"rule"}),
	}
	reg.MustRegister(rec.parses, rec.mismatch, rec.duration)
	return rec
}

func (rec *Recorder) observeParse(rule string, outcome MatchResult, elapsed time.Duration) {
	if rec == nil {
		return
	}
	label := "match"
	if IsMismatch(outcome) {
		label = "mismatch"
	}
	rec.parses.WithLabelValues(rule, label).Inc()
	rec.duration.WithLabelValues(rule).Observe(elapsed.Seconds())
}

func (rec *Recorder) observeRuleMismatch(rule string) {
	if rec == nil {
		return
	}
	rec.mismatch.WithLabelValues(rule).Inc()
}
