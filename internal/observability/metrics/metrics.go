package metrics

import "github.com/prometheus/client_golang/prometheus"

// PipelineMetrics exposes counters/histograms for the webhook pipeline.
type PipelineMetrics struct {
	webhookTotal    *prometheus.CounterVec
	extractionTotal *prometheus.CounterVec
	persistTotal    *prometheus.CounterVec
	pipelineLatency *prometheus.HistogramVec
}

func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		webhookTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadlistener",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Total inbound webhook events by outcome",
		}, []string{"outcome"}),
		extractionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadlistener",
			Subsystem: "extraction",
			Name:      "results_total",
			Help:      "Total extraction runs by status",
		}, []string{"status"}),
		persistTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadlistener",
			Subsystem: "sheets",
			Name:      "persist_total",
			Help:      "Total persistence attempts by status",
		}, []string{"status"}),
		pipelineLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leadlistener",
			Subsystem: "webhook",
			Name:      "pipeline_latency_seconds",
			Help:      "Latency of full webhook pipeline processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.webhookTotal, m.extractionTotal, m.persistTotal, m.pipelineLatency)
	return m
}

func (m *PipelineMetrics) ObserveWebhook(outcome string) {
	if m == nil {
		return
	}
	m.webhookTotal.WithLabelValues(outcome).Inc()
}

func (m *PipelineMetrics) ObserveExtraction(status string) {
	if m == nil {
		return
	}
	m.extractionTotal.WithLabelValues(status).Inc()
}

func (m *PipelineMetrics) ObservePersist(status string) {
	if m == nil {
		return
	}
	m.persistTotal.WithLabelValues(status).Inc()
}

func (m *PipelineMetrics) ObservePipelineLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.pipelineLatency.WithLabelValues(outcome).Observe(seconds)
}
