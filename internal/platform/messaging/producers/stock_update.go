package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/segmentio/kafka-go"
)

// StockUpdateProducer publishes the items consumed by paid sales for the inventory processor
type StockUpdateProducer struct {
	logger *slog.Logger
	writer KafkaWriter
	topic  string
}

// NewStockUpdateProducer ensures the stock topic exists and returns a producer writing to it
func NewStockUpdateProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*StockUpdateProducer, error) {
	if cfg.StockTopic == "" {
		return nil, fmt.Errorf("kafka stock topic is not configured")
	}

	if err := dialAndEnsureTopic(cfg.Brokers, cfg.StockTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure stock topic %s exists: %w", cfg.StockTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.StockTopic,
		Balancer:     &kafka.Hash{}, // same sale id, same partition
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		WriteTimeout: cfg.MaxWait,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write stock updates asynchronously", "topic", cfg.StockTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Wrote stock updates asynchronously", "topic", cfg.StockTopic, "count", len(messages))
			}
		},
	}

	return NewStockUpdateProducerWithWriter(logger, writer, cfg.StockTopic), nil
}

// NewStockUpdateProducerWithWriter builds a producer on an existing writer
func NewStockUpdateProducerWithWriter(logger *slog.Logger, writer KafkaWriter, topic string) *StockUpdateProducer {
	return &StockUpdateProducer{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Publish JSON-encodes value and writes it under key
func (p *StockUpdateProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal stock update: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish stock update",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish stock update to %s: %w", p.topic, err)
	}

	p.logger.Debug("Published stock update", "topic", p.topic, "key", key)
	return nil
}

func (p *StockUpdateProducer) Close() error {
	p.logger.Info("Closing stock update producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
