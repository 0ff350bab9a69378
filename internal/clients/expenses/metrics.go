package expenses

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var counterAPICalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expense_dashboard",
		Subsystem: "expenses_api",
		Name:      "requests_total",
	},
	[]string{"op", "ok"},
)

func observeAPICall(op string, ok bool) {
	counterAPICalls.WithLabelValues(op, strconv.FormatBool(ok)).Inc()
}
