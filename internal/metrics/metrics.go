package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ProcessedEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_processed_total", Help: "Total processed outbox events"},
	)
	FailedEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_failed_total", Help: "Total failed outbox events"},
	)
	DLQEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_dlq_total", Help: "Total events inserted into DLQ"},
	)
	LLMCalls = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "llm_calls_total", Help: "Total LLM invocations"},
	)
	LLMFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "llm_failures_total", Help: "Total failed LLM invocations"},
	)
	RemindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "reminder_digests_sent_total", Help: "Total daily reminder digests sent"},
	)
)

func Register() {
	prometheus.MustRegister(ProcessedEvents, FailedEvents, DLQEvents, LLMCalls, LLMFailures, RemindersSent)
}
