package client

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fenix_client",
			Name:      "requests_total",
			Help:      "Requests issued, by method and status class (2xx..5xx, or error).",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fenix_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a request including body read.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fenix_client",
			Name:      "unauthorized_total",
			Help:      "Responses with status 401 that reset the session.",
		},
	)
)

func observe(method string, resp *resty.Response, err error, d time.Duration) {
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
	requestsTotal.WithLabelValues(method, statusClass(resp, err)).Inc()
}

func statusClass(resp *resty.Response, err error) string {
	if err != nil || resp == nil || resp.RawResponse == nil {
		return "error"
	}
	code := resp.StatusCode()
	if code < http.StatusContinue {
		return "error"
	}
	return strconv.Itoa(code/100) + "xx"
}
