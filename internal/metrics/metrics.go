package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ListingWritesTotal counts listing store writes by entity (property, roommate) and op (create, update, delete).
	ListingWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_writes_total",
			Help: "Total number of listing store writes",
		},
		[]string{"entity", "op"},
	)

	// SessionsPurgedTotal counts sessions removed by the expiry purge job.
	SessionsPurgedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_purged_total",
			Help: "Total number of expired sessions purged",
		},
	)
)

var (
	objectIDPathSegment = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	initOnce            sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, ListingWritesTotal, SessionsPurgedTotal)
	})
}

// NormalizePath reduces cardinality by replacing ObjectID path segments with {id}.
// E.g. /property/64b5f0a1c2d3e4f5a6b7c8d9 -> /property/{id}.
func NormalizePath(path string) string {
	return objectIDPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncListingWrite increments the write counter for the given entity and op.
func IncListingWrite(entity, op string) {
	ListingWritesTotal.WithLabelValues(entity, op).Inc()
}

// AddSessionsPurged adds n to the purge counter (call after each purge run).
func AddSessionsPurged(n int64) {
	SessionsPurgedTotal.Add(float64(n))
}
