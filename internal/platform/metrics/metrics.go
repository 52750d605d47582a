// Package metrics agrupa los collectors Prometheus del servicio.
// Cada Recorder trae su propio registry para que los tests no choquen con el global.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adoption_store"

type Recorder struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	pets      *prometheus.GaugeVec
	loadFails prometheus.Counter
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutaciones del store por operación y resultado.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Duración de mutaciones incluyendo escritura al backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		pets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pets",
			Help:      "Mascotas en el estado confirmado, por status.",
		}, []string{"status"}),
		loadFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_fallbacks_total",
			Help:      "Keys que cayeron a default al cargar (read error o JSON inválido).",
		}),
	}

	r.registry.MustRegister(
		r.mutations,
		r.duration,
		r.pets,
		r.loadFails,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveMutation registra una mutación terminada. err == nil cuenta como "ok".
func (r *Recorder) ObserveMutation(op string, started time.Time, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.mutations.WithLabelValues(op, result).Inc()
	r.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// SetPetCounts reemplaza el gauge por status con los conteos actuales.
func (r *Recorder) SetPetCounts(byStatus map[string]int) {
	if r == nil {
		return
	}
	r.pets.Reset()
	for status, n := range byStatus {
		r.pets.WithLabelValues(status).Set(float64(n))
	}
}

func (r *Recorder) LoadFallback() {
	if r == nil {
		return
	}
	r.loadFails.Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler expone /metrics para este registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
