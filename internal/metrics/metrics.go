package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

const namespace = "spottergrid"

// Recorder exports board generation counters on its own registry. A nil
// Recorder discards everything.
type Recorder struct {
	registry       *prometheus.Registry
	boards         prometheus.Counter
	ignored        prometheus.Counter
	placed         prometheus.Counter
	relocations    *prometheus.CounterVec
	twoWayNumbers  prometheus.Gauge
	requestsByPath *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		boards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boards_generated_total",
			Help:      "Spotting boards built.",
		}),
		ignored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_ignored_total",
			Help:      "Roster entries dropped by the ignore flag.",
		}),
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_placed_total",
			Help:      "Players placed on a board.",
		}),
		relocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relocations_total",
			Help:      "Automatic special-teams relocations by rule.",
		}, []string{"rule"}),
		twoWayNumbers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "two_way_numbers",
			Help:      "Numbers with players on both sides in the last board.",
		}),
		requestsByPath: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"route", "status"}),
	}

	r.registry.MustRegister(r.boards, r.ignored, r.placed, r.relocations, r.twoWayNumbers, r.requestsByPath)
	return r
}

func (r *Recorder) RecordBoard(b *models.Board) {
	if r == nil || b == nil {
		return
	}
	r.boards.Inc()
	r.ignored.Add(float64(b.Ignored))
	r.placed.Add(float64(b.Active))
	for _, m := range b.Moves {
		r.relocations.WithLabelValues(m.Rule).Inc()
	}
	r.twoWayNumbers.Set(float64(b.TwoWayNumbers()))
}

func (r *Recorder) RecordRequest(route, status string) {
	if r == nil {
		return
	}
	r.requestsByPath.WithLabelValues(route, status).Inc()
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
