package metrics

import "github.com/VictoriaMetrics/metrics"

// upstream statuses are tracked per class rather than per code to keep the
// metric cardinality bounded
var (
	status2xx = metrics.NewCounter(`dataurl_fetch_responses_total{status="2xx"}`)
	status3xx = metrics.NewCounter(`dataurl_fetch_responses_total{status="3xx"}`)
	status4xx = metrics.NewCounter(`dataurl_fetch_responses_total{status="4xx"}`)
	status5xx = metrics.NewCounter(`dataurl_fetch_responses_total{status="5xx"}`)
	statusXXX = metrics.NewCounter(`dataurl_fetch_responses_total{status="other"}`)
)

func IncFetchResponseStatus(code int) {
	switch {
	case code >= 200 && code < 300:
		status2xx.Inc()
	case code >= 300 && code < 400:
		status3xx.Inc()
	case code >= 400 && code < 500:
		status4xx.Inc()
	case code >= 500 && code < 600:
		status5xx.Inc()
	default:
		statusXXX.Inc()
	}
}
