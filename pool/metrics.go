package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "mru_pool_entries",
		Help: "The number of entries currently held by the pool",
	}, []string{"pool"})

	entriesPushed = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "mru_pool_pushed_total",
		Help: "The total number of entries pushed to the pool",
	}, []string{"pool"})

	entriesEvicted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "mru_pool_evicted_total",
		Help: "The total number of least recently used entries evicted and released",
	}, []string{"pool"})

	entriesPopped = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "mru_pool_popped_total",
		Help: "The total number of entries taken out of the pool",
	}, []string{"pool"})
)
