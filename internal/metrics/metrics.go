package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	weeklyCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_weekly_cycles_total",
			Help: "Total number of weekly refresh cycles by result",
		},
		[]string{"result"},
	)

	gamesFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_games_fetched_total",
			Help: "Total number of games returned by the schedule provider",
		},
	)

	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reminder_fetch_duration_seconds",
			Help:    "Duration of schedule provider calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	remindersScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_jobs_scheduled_total",
			Help: "Total number of one-shot reminder jobs registered",
		},
	)

	remindersSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_jobs_skipped_total",
			Help: "Total number of games that did not get a reminder, by reason",
		},
		[]string{"reason"},
	)

	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_dispatch_total",
			Help: "Total number of reminder messages dispatched, by result",
		},
		[]string{"result"},
	)
)

func RecordCycle(result string) {
	weeklyCyclesTotal.WithLabelValues(result).Inc()
}

func RecordGamesFetched(count int) {
	gamesFetchedTotal.Add(float64(count))
}

func ObserveFetchDuration(d time.Duration) {
	fetchDuration.Observe(d.Seconds())
}

func RecordReminderScheduled() {
	remindersScheduledTotal.Inc()
}

func RecordReminderSkipped(reason string) {
	remindersSkippedTotal.WithLabelValues(reason).Inc()
}

func RecordDispatch(result string) {
	dispatchTotal.WithLabelValues(result).Inc()
}
