package kafka

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Shopify/sarama"
	"max.ks1230/expense-dashboard/internal/logger"
)

type consumerConfig interface {
	Brokers() []string
	ConsumerGroup() string
}

// MessageHandler processes one consumed payload. Both the bot (chart
// results) and the reporter (chart requests) plug into the same consumer.
type MessageHandler interface {
	HandlePayload(ctx context.Context, payload []byte)
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handler       MessageHandler
}

func NewConsumer(cfg consumerConfig, topic string, handler MessageHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         topic,
		handler:       handler,
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup", zap.String("topic", c.topic))
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup", zap.String("topic", c.topic))
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		logger.Info(
			"received message",
			zap.String("topic", c.topic),
			zap.ByteString("key", message.Key),
		)
		c.handler.HandlePayload(session.Context(), message.Value)
		session.MarkMessage(message, "")
	}

	return nil
}
