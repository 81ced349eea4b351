// Package metrics expõe as métricas de uma execução do pipeline.
// Como o processo é batch, as métricas são gravadas em arquivo texto ao final
// (formato do textfile collector do node_exporter) em vez de servidas por HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Pipeline struct {
	registry *prometheus.Registry

	// RowsInserted conta linhas aceitas pelo banco relacional, por tabela.
	RowsInserted *prometheus.CounterVec

	// RowsSkipped conta linhas descartadas, por tabela e motivo.
	RowsSkipped *prometheus.CounterVec

	DocumentsLoaded prometheus.Counter

	// ReportRows guarda a quantidade de registros do último relatório gerado.
	ReportRows *prometheus.GaugeVec

	StageDuration *prometheus.HistogramVec
}

func New() *Pipeline {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Pipeline{
		registry: registry,
		RowsInserted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adtech_rows_inserted_total",
				Help: "Total de linhas enviadas ao banco relacional",
			},
			[]string{"table"},
		),
		RowsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adtech_rows_skipped_total",
				Help: "Total de linhas descartadas",
			},
			[]string{"table", "reason"},
		),
		DocumentsLoaded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adtech_documents_loaded_total",
				Help: "Total de documentos de engajamento gravados",
			},
		),
		ReportRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "adtech_report_rows",
				Help: "Registros exportados por relatório",
			},
			[]string{"report"},
		),
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adtech_stage_duration_seconds",
				Help:    "Duração de cada etapa do pipeline em segundos",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
			},
			[]string{"stage"},
		),
	}
}

// ObserveStage registra a duração de uma etapa iniciada em start
func (p *Pipeline) ObserveStage(stage string, start time.Time) {
	p.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (p *Pipeline) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile grava todas as métricas no caminho informado
func (p *Pipeline) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
