package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup results recorded by LookupsTotal
const (
	resultHit  = "hit"
	resultMiss = "miss"
)

var (
	// LookupsTotal counts Get calls per cache group and result (hit or miss).
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamehub",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of cache lookups by result.",
		},
		[]string{"cache", "result"},
	)

	// EvictionsTotal counts entries dropped by the cache itself.
	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamehub",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of entries evicted from a cache.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(LookupsTotal, EvictionsTotal)
}

// entriesCollector reports the live entry count of one group, read at scrape
// time since expiry happens outside of the application.
type entriesCollector struct {
	desc *prometheus.Desc
	size func() int
}

func (c *entriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entriesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.size()))
}

var (
	collectorsMu sync.Mutex
	collectors   = make(map[string]*entriesCollector)
	// registerer is swapped by tests for an isolated registry
	registerer prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerEntries publishes the size of group, replacing the collector of a
// previous cache with the same group.
func registerEntries(group string, size func() int) {
	c := &entriesCollector{
		desc: prometheus.NewDesc(
			"gamehub_cache_entries",
			"Current number of live entries in a cache.",
			nil,
			prometheus.Labels{"cache": group},
		),
		size: size,
	}

	collectorsMu.Lock()
	defer collectorsMu.Unlock()
	if old, ok := collectors[group]; ok {
		registerer.Unregister(old)
	}
	collectors[group] = c
	_ = registerer.Register(c)
}

func unregisterEntries(group string) {
	collectorsMu.Lock()
	defer collectorsMu.Unlock()
	if c, ok := collectors[group]; ok {
		registerer.Unregister(c)
		delete(collectors, group)
	}
}
