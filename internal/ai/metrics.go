package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	llmRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storybranch_llm_requests_total",
			Help: "Model calls by outcome. One per logical call, not per attempt.",
		},
		[]string{"provider", "status"},
	)
	llmRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storybranch_llm_request_duration_seconds",
			Help:    "Duration of single model attempts.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
	llmRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storybranch_llm_retries_total",
			Help: "Failed model attempts that were followed by another attempt.",
		},
		[]string{"provider"},
	)
)
