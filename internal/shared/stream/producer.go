package stream

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Producer publishes order lifecycle events to Kafka for downstream audit
// consumers. A nil Producer is safe to call and publishes nothing, so the
// server runs fine with Kafka disabled.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewProducer(brokers []string, topic string, logger *zap.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: prod, topic: topic, logger: logger}, nil
}

// OrderStatusEvent one order state change
type OrderStatusEvent struct {
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	UpdatedBy  string    `json:"updated_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishOrderStatus emits one status-change event, keyed by order id so all
// events for an order land on the same partition. Publish failures are
// logged, not propagated; the event stream is advisory.
func (p *Producer) PublishOrderStatus(orderID, fromStatus, toStatus, updatedBy string) error {
	if p == nil {
		return nil
	}

	event := OrderStatusEvent{
		OrderID:    orderID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		UpdatedBy:  updatedBy,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(orderID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Warn("kafka publish failed",
			zap.String("order_id", orderID),
			zap.Error(err))
		return err
	}

	p.logger.Debug("order event published",
		zap.String("order_id", orderID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
