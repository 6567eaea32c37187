package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

var (
	// HTTP
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	// Scheduling
	remindersScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_scheduled_total",
			Help: "Total number of reminder dispatches created.",
		},
	)
	remindersEnqueued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_enqueued_total",
			Help: "Total number of tasks placed in the delayed set.",
		},
	)
	remindersPumped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_pumped_total",
			Help: "Total number of due tasks handed to the work queue.",
		},
	)

	// Delivery
	deliveryAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_delivery_attempts_total",
			Help: "Delivery attempts by result.",
		},
		[]string{"result"},
	)
	deliveryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reminder_delivery_duration_seconds",
			Help:    "Time spent delivering one dispatch to all of its recipients.",
			Buckets: prometheus.DefBuckets,
		},
	)
	leaseBusy = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_lease_busy_total",
			Help: "Tasks postponed because another worker held the dispatch lease.",
		},
	)

	// Retry controller
	retriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_retried_total",
			Help: "Failed dispatches re-armed by the retry controller, by result.",
		},
		[]string{"result"},
	)

	// Gauges (DB collector)
	dispatchStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reminder_dispatches_count",
			Help: "Current count of reminder dispatches by status.",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. It is safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,

			remindersScheduled,
			remindersEnqueued,
			remindersPumped,

			deliveryAttempts,
			deliveryDuration,
			leaseBusy,

			retriesTotal,
			dispatchStatus,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// GinHandler exposes the registry on a gin route.
func GinHandler() func(*ginext.Context) {
	h := Handler()
	return func(c *ginext.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware records request counts and latencies per route template.
func Middleware() func(*ginext.Context) {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// --- HTTP ---
func ObserveHTTPRequest(method, route, code string, d time.Duration) {
	httpRequests.WithLabelValues(method, route, code).Inc()
	httpDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}

// --- Scheduling ---
func AddScheduled(n int) { remindersScheduled.Add(float64(max0(n))) }
func IncEnqueued()       { remindersEnqueued.Inc() }
func AddPumped(n int)    { remindersPumped.Add(float64(max0(n))) }

// --- Delivery ---
func IncDeliverySent()                { deliveryAttempts.WithLabelValues("sent").Inc() }
func IncDeliveryFailed()              { deliveryAttempts.WithLabelValues("failed").Inc() }
func ObserveDelivery(d time.Duration) { deliveryDuration.Observe(d.Seconds()) }
func IncLeaseBusy()                   { leaseBusy.Inc() }

func IncRetried(ok bool) {
	if ok {
		retriesTotal.WithLabelValues("success").Inc()
		return
	}
	retriesTotal.WithLabelValues("failure").Inc()
}

// --- Gauges (DB collector) ---
func SetDispatchStatusCount(status string, count int64) {
	if count < 0 {
		count = 0
	}
	dispatchStatus.WithLabelValues(status).Set(float64(count))
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
