package subscriber

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/config"
	"github.com/bancotranquilo/compras-service/internal/metrics"
	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/publisher"
)

// KafkaConsumer reads a set of topics under one consumer group. A message is
// committed only after the handler succeeds; on repeated handler failure the
// message is dead-lettered instead of being dropped.
type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher *publisher.KafkaPublisher
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher *publisher.KafkaPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per topic. FetchMessage/CommitMessages is used
// instead of ReadMessage so the offset advances only after processMessage
// returns, keeping at-least-once semantics across a crash mid-handler.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go func(r *kafka.Reader) {
			for {
				msg, err := r.FetchMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("kafka fetch error: %v", err)
					continue
				}
				if err := c.processMessage(ctx, msg, handler); err != nil {
					// Leave the offset uncommitted so the message
					// redelivers rather than being lost.
					logrus.Errorf("message not acknowledged: %v", err)
					continue
				}
				if err := r.CommitMessages(ctx, msg); err != nil {
					logrus.Errorf("kafka commit error: %v", err)
				}
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler func(topic string, value []byte) error) error {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(msg.Topic, msg.Value)
		if err == nil {
			return nil
		}

		backoff := c.calculateBackoff(attempt)
		logrus.Warnf("handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		time.Sleep(backoff)
	}

	logrus.Errorf("message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return fmt.Errorf("no DLQ publisher configured for topic %s", msg.Topic)
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.TransactionDLQTopic, dlqMessage); err != nil {
		return fmt.Errorf("failed to send message to DLQ: %w", err)
	}
	metrics.DeadLetters.WithLabelValues(msg.Topic).Inc()
	logrus.Infof("message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
	return nil
}

func (c *KafkaConsumer) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.RetryConfig.BaseDelay

	if delay > c.RetryConfig.MaxDelay {
		delay = c.RetryConfig.MaxDelay
	}

	if c.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
