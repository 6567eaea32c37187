package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

type stubCounter struct {
	counts map[model.Status]int64
	err    error
}

func (s stubCounter) CountByStatus(context.Context) (map[model.Status]int64, error) {
	return s.counts, s.err
}

func TestUpdateStatusGauges(t *testing.T) {
	updateStatusGauges(context.Background(), stubCounter{counts: map[model.Status]int64{
		model.StatusPending: 3,
		model.StatusFailed:  1,
	}})

	assert.Equal(t, float64(3), testutil.ToFloat64(dispatchStatus.WithLabelValues("pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(dispatchStatus.WithLabelValues("failed")))

	// errors leave the previous values in place
	updateStatusGauges(context.Background(), stubCounter{err: errors.New("db down")})
	assert.Equal(t, float64(3), testutil.ToFloat64(dispatchStatus.WithLabelValues("pending")))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(deliveryAttempts.WithLabelValues("sent"))
	IncDeliverySent()
	assert.Equal(t, before+1, testutil.ToFloat64(deliveryAttempts.WithLabelValues("sent")))

	before = testutil.ToFloat64(remindersScheduled)
	AddScheduled(2)
	AddScheduled(-1)
	assert.Equal(t, before+2, testutil.ToFloat64(remindersScheduled))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Register()
	SetDispatchStatusCount("sent", 1)

	e := gin.New()
	e.Use(Middleware())
	e.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	e.GET("/metrics", GinHandler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping", "204"))

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping", "204")))

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reminder_dispatches_count")
}
