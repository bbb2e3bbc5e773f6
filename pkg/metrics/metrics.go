package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "newsdesk"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route, method and status class."},
		[]string{"route", "method", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request duration by route.", Buckets: prometheus.DefBuckets},
		[]string{"route"},
	)

	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "uploads_total", Help: "Uploads to the media host by folder and result."},
		[]string{"folder", "result"},
	)
	UploadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "upload_duration_seconds", Help: "Upload duration by folder.", Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}},
		[]string{"folder"},
	)
	RejectedFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rejected_files_total", Help: "Files refused by an admission policy."},
		[]string{"policy"},
	)

	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "store_operation_duration_seconds", Help: "Document load/save duration.", Buckets: prometheus.DefBuckets},
		[]string{"op", "result"},
	)
	CollectionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Name: "collection_size", Help: "Records per collection after the last save."},
		[]string{"collection"},
	)
	Activities = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "activities_recorded_total", Help: "Activity log entries by kind."},
		[]string{"type"},
	)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "login_attempts_total", Help: "Login attempts by result."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(Uploads)
	reg.MustRegister(UploadDuration)
	reg.MustRegister(RejectedFiles)
	reg.MustRegister(StoreOperationDuration)
	reg.MustRegister(CollectionSize)
	reg.MustRegister(Activities)
	reg.MustRegister(LoginAttempts)
}

// StatusClass buckets an HTTP status code as 1xx..5xx.
func StatusClass(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
