// Package metrics exposes readiness and use-case telemetry as Prometheus
// metrics. stockpile is a one-shot CLI, so metrics are written to a
// node_exporter textfile rather than served.
package metrics

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stockpile"

var statuses = []domain.Status{domain.StatusOK, domain.StatusWarning, domain.StatusCritical}

// Collector owns a private registry. It implements service.UseCaseObserver.
type Collector struct {
	registry *prometheus.Registry

	completion *prometheus.GaugeVec
	status     *prometheus.GaugeVec
	shortages  *prometheus.GaugeVec
	score      prometheus.Gauge
	reminder   prometheus.Gauge

	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		completion: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "category_completion_percent",
				Help:      "Completion percentage per category",
			},
			[]string{"category"},
		),
		status: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "category_status",
				Help:      "1 for the category's current status, 0 otherwise",
			},
			[]string{"category", "status"},
		),
		shortages: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "category_shortages",
				Help:      "Number of recommended items short per category",
			},
			[]string{"category"},
		),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "preparedness_score",
			Help:      "Share of categories in ok status, 0-100",
		}),
		reminder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backup_reminder_due",
			Help:      "1 when a data backup is due",
		}),
		useCases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "use_cases_total",
				Help:      "Service use cases executed",
			},
			[]string{"use_case", "outcome"},
		),
		useCaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "use_case_duration_seconds",
				Help:      "Service use-case latency",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"use_case"},
		),
	}

	c.registry.MustRegister(
		c.completion,
		c.status,
		c.shortages,
		c.score,
		c.reminder,
		c.useCases,
		c.useCaseDuration,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// RecordDashboard replaces every per-category series with the given summaries.
func (c *Collector) RecordDashboard(categories []readiness.CategoryStatusSummary, score int) {
	c.completion.Reset()
	c.status.Reset()
	c.shortages.Reset()

	for _, cat := range categories {
		c.completion.WithLabelValues(cat.CategoryID).Set(float64(cat.CompletionPercentage))
		c.shortages.WithLabelValues(cat.CategoryID).Set(float64(len(cat.Shortages)))
		for _, s := range statuses {
			v := 0.0
			if cat.Status == s {
				v = 1
			}
			c.status.WithLabelValues(cat.CategoryID, string(s)).Set(v)
		}
	}
	c.score.Set(float64(score))
}

func (c *Collector) RecordReminder(due bool) {
	if due {
		c.reminder.Set(1)
		return
	}
	c.reminder.Set(0)
}

func (c *Collector) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	outcome := "success"
	if !event.Success {
		outcome = "error"
	}
	c.useCases.WithLabelValues(event.Name, outcome).Inc()
	c.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// WriteTextfile writes the registry in text exposition format, atomically
// replacing path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
