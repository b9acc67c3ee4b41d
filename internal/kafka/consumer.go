package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard-service/internal/models"
)

// PriceStore defines the database operations the consumer writes through.
type PriceStore interface {
	UpsertDailyPrices(symbol string, prices []models.NewDailyPrice) (int, error)
}

// Consumer ingests daily price batches from Kafka into the price store.
// A malformed or failing message is logged and skipped; it never stops the
// consumer loop.
type Consumer struct {
	reader *kafka.Reader
	store  PriceStore
}

// NewConsumer creates a new Kafka consumer for price batch events.
func NewConsumer(brokers []string, topic, groupID string, store PriceStore) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	})

	return &Consumer{
		reader: reader,
		store:  store,
	}
}

// Start begins consuming messages from Kafka.
func (c *Consumer) Start(ctx context.Context) error {
	logrus.Infof("starting kafka consumer for topic: %s", c.reader.Config().Topic)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("kafka consumer shutting down")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logrus.WithError(err).Error("error reading message")
				continue
			}

			if err := c.processMessage(msg); err != nil {
				logrus.WithError(err).Error("error processing message")
			}
		}
	}
}

// processMessage handles a single Kafka message.
func (c *Consumer) processMessage(msg kafka.Message) error {
	var event models.PriceBatchEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal price batch event: %w", err)
	}

	if event.EventType != models.EventPricesReceived {
		logrus.Debugf("ignoring event type: %s", event.EventType)
		return nil
	}

	rows, err := c.store.UpsertDailyPrices(event.Symbol, event.Prices)
	if err != nil {
		return fmt.Errorf("failed to store price batch for %s: %w", event.Symbol, err)
	}

	logrus.WithFields(logrus.Fields{
		"symbol": event.Symbol,
		"rows":   rows,
	}).Info("stored price batch")

	return nil
}
