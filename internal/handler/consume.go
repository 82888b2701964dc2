package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/readspace/library-portal/internal/model"
)

type confirmPayment func(ctx context.Context, bookingUid string) error

type Consumer struct {
	confirmPaymentHandler confirmPayment
	log                   *zap.Logger
	ready                 chan bool
}

func NewConsumer(confirmPayment confirmPayment, log *zap.Logger) *Consumer {
	return &Consumer{
		confirmPaymentHandler: confirmPayment,
		log:                   log.Named("consumer"),
		ready:                 make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev model.PaymentEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("payment event unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			if ev.Status != "paid" {
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.confirmPaymentHandler(context.Background(), ev.BookingUid); err != nil {
				consumer.log.Error("consumer.confirmPaymentHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
