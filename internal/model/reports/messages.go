// Package reports carries the asynchronous chart pipeline: the bot enqueues
// a ChartRequest, the reporter renders a PNG and answers with a ChartResult
// on the results topic, and the bot delivers it to the chat.
package reports

const (
	KindTrend    = "trend"
	KindCategory = "category"
	KindMethod   = "method"
)

var Kinds = []string{KindTrend, KindCategory, KindMethod}

type ChartRequest struct {
	UserID   int64  `json:"user_id"`
	Kind     string `json:"kind"`
	Currency string `json:"currency"`
}

type ChartResult struct {
	UserID  int64  `json:"user_id"`
	Kind    string `json:"kind"`
	Caption string `json:"caption"`
	PNG     []byte `json:"png,omitempty"`
}

func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
