package reports

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/logger"
)

type photoSender interface {
	SendMessage(text string, userID int64) error
	SendPhoto(name string, png []byte, caption string, userID int64) error
}

// Acceptor is the bot-side end of the pipeline: it consumes chart results
// and delivers them to the chat, falling back to a plain message when the
// reporter produced no image.
type Acceptor struct {
	sender photoSender
}

func NewAcceptor(sender photoSender) *Acceptor {
	return &Acceptor{sender: sender}
}

func (a *Acceptor) HandlePayload(_ context.Context, payload []byte) {
	var result ChartResult
	if err := json.Unmarshal(payload, &result); err != nil {
		logger.Error("cannot unmarshal chart result", zap.Error(err))
		return
	}

	logger.Info("AcceptChartResult",
		zap.Int64("userID", result.UserID), zap.String("kind", result.Kind))

	var err error
	if len(result.PNG) == 0 {
		err = a.sender.SendMessage(result.Caption, result.UserID)
	} else {
		err = a.sender.SendPhoto(result.Kind+".png", result.PNG, result.Caption, result.UserID)
	}
	if err != nil {
		logger.Error("failed to deliver chart result",
			zap.Int64("userID", result.UserID), zap.Error(err))
	}
}
