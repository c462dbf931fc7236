package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics reúne os contadores e histogramas Prometheus da API
type Metrics struct {
	// Métricas HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Métricas de agregação do dashboard
	CardLatency     *prometheus.HistogramVec
	CardFailures    *prometheus.CounterVec
	ActiveCampaigns prometheus.Gauge

	// Métricas de ingestão de eventos
	IngestedEvents *prometheus.CounterVec

	// Métricas do snapshot agendado
	SnapshotRuns    *prometheus.CounterVec
	SnapshotLatency prometheus.Histogram
}

// DefaultMetrics é a instância global usada pelos middlewares
var DefaultMetrics *Metrics

// NewMetrics cria e registra todas as métricas no registro padrão
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP recebidas",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latência das requisições HTTP em segundos",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		CardLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dashboard_card_duration_seconds",
				Help:      "Latência de cada card do dashboard em segundos",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"card"},
		),
		CardFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_card_failures_total",
				Help:      "Total de falhas de agregação por card",
			},
			[]string{"card"},
		),
		ActiveCampaigns: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_campaigns",
				Help:      "Campanhas ativas no último snapshot",
			},
		),
		IngestedEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingested_events_total",
				Help:      "Total de eventos de engajamento ingeridos",
			},
			[]string{"type"},
		),
		SnapshotRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_runs_total",
				Help:      "Execuções do snapshot do dashboard",
			},
			[]string{"status"},
		),
		SnapshotLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "snapshot_duration_seconds",
				Help:      "Duração da geração do snapshot em segundos",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}

	DefaultMetrics = m
	return m
}

// ObserveHTTP registra uma requisição HTTP finalizada
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveCard registra a duração da agregação de um card
func (m *Metrics) ObserveCard(card string, duration time.Duration, err error) {
	m.CardLatency.WithLabelValues(card).Observe(duration.Seconds())
	if err != nil {
		m.CardFailures.WithLabelValues(card).Inc()
	}
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
