package planner

import "github.com/prometheus/client_golang/prometheus"

// Recorder exports search counters to Prometheus. All methods are
// nil-safe so the search never guards its instrumentation sites.
type Recorder struct {
	nodesExpanded prometheus.Counter
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	incumbents    prometheus.Counter
}

// NewRecorder builds a Recorder and registers its collectors with reg.
// A nil registerer yields a functional but unregistered Recorder,
// which is convenient in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	rec := &Recorder{
		nodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "railplan",
			Subsystem: "search",
			Name:      "nodes_expanded_total",
			Help:      "Candidate expansions performed by the planner.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "railplan",
			Subsystem: "search",
			Name:      "cache_hits_total",
			Help:      "Sub-searches answered from the fingerprint cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "railplan",
			Subsystem: "search",
			Name:      "cache_misses_total",
			Help:      "Sub-searches that had to be computed.",
		}),
		incumbents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "railplan",
			Subsystem: "search",
			Name:      "incumbent_updates_total",
			Help:      "Times a candidate plan improved on the best known plan.",
		}),
	}

	if reg != nil {
		reg.MustRegister(rec.nodesExpanded, rec.cacheHits, rec.cacheMisses, rec.incumbents)
	}

	return rec
}

// NodeExpanded counts one candidate expansion.
func (r *Recorder) NodeExpanded() {
	if r == nil {
		return
	}
	r.nodesExpanded.Inc()
}

// CacheHit counts one memoized sub-search.
func (r *Recorder) CacheHit() {
	if r == nil {
		return
	}
	r.cacheHits.Inc()
}

// CacheMiss counts one computed sub-search.
func (r *Recorder) CacheMiss() {
	if r == nil {
		return
	}
	r.cacheMisses.Inc()
}

// IncumbentUpdated counts one improvement of the best known plan.
func (r *Recorder) IncumbentUpdated() {
	if r == nil {
		return
	}
	r.incumbents.Inc()
}
