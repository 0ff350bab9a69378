package reports

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

type requestsProducer interface {
	ProduceMessage(message []byte) error
}

// Requester enqueues chart requests for the reporter.
type Requester struct {
	producer requestsProducer
}

func NewRequester(producer requestsProducer) *Requester {
	return &Requester{producer: producer}
}

func (r *Requester) RequestChart(_ context.Context, userID int64, kind, curr string) error {
	payload, err := json.Marshal(ChartRequest{
		UserID:   userID,
		Kind:     kind,
		Currency: curr,
	})
	if err != nil {
		return errors.Wrap(err, "marshal chart request")
	}
	return errors.Wrap(r.producer.ProduceMessage(payload), "request chart")
}
