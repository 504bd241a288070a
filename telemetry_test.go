package peg

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	return prometheus.NewRegistry()
}

func TestRecorderObservesParses(t *testing.T) {
	reg := newTestRegistry(t)
	rec := NewRecorder(reg)

	g := NewGrammar(WithRecorder(rec))
	g.Define("S", g.litExpr("ok"))

	g.Parse("ok", "S")
	g.Parse("no", "S")

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawMatch, sawMismatch bool
	for _, fam := range families {
		if fam.GetName() != "peg_parses_total" {
			continue
		}
		for _, m := range fam.Metric {
			for _, lbl := range m.Label {
				if lbl.GetName() != "outcome" {
					continue
				}
				switch lbl.GetValue() {
				case "match":
					sawMatch = sawMatch || m.Counter.GetValue() == 1
				case "mismatch":
					sawMismatch = sawMismatch || m.Counter.GetValue() == 1
				}
			}
		}
	}
	require.True(t, sawMatch, "expected a match observation")
	require.True(t, sawMismatch, "expected a mismatch observation")
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	require.NotPanics(t, func() {
		rec.observeParse("S", Matched(0, 0), 0)
		rec.observeRuleMismatch("S")
	})
}
