package metrics

import (
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

var (
	fetchTotal    = metrics.NewCounter("dataurl_fetch_total")
	fetchErr      = metrics.NewCounter("dataurl_fetch_error_total")
	fetchBytes    = metrics.NewCounter("dataurl_fetch_body_bytes_total")
	fetchDuration = metrics.NewSummary("dataurl_fetch_duration_seconds")
)

func IncFetch() {
	fetchTotal.Inc()
}

func IncFetchErr() {
	fetchErr.Inc()
}

func AddFetchBodyBytes(n int) {
	fetchBytes.Add(n)
}

func ObserveFetchDuration(d time.Duration) {
	fetchDuration.Update(d.Seconds())
}

func DefaultServer(addr string) *http.Server {
	metricsMux := http.NewServeMux()
	metricsMux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	return &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		Handler:           metricsMux,
	}
}
