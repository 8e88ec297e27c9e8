// Package kafka publishes order lifecycle events to downstream consumers
// such as billing and shipping. Events go out after the owning transaction
// commits; a broker outage never fails a command.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"fulfillment/internal/core/domain/model/order"

	"github.com/Shopify/sarama"
)

// orderChangedEvent is the wire shape of an order status change.
type orderChangedEvent struct {
	OrderID     string           `json:"orderId"`
	Kind        string           `json:"kind"`
	Mode        string           `json:"mode"`
	Status      string           `json:"status"`
	Approved    bool             `json:"approved"`
	TotalAmount int64            `json:"totalAmount"`
	Lines       []orderEventLine `json:"lines"`
}

type orderEventLine struct {
	LineID       string `json:"lineId"`
	SKU          string `json:"sku"`
	RequestedQty int    `json:"requestedQty"`
	PickedQty    int    `json:"pickedQty"`
}

// OrderChangedPublisher sends order.changed events through a synchronous
// Kafka producer. Messages are keyed by order id so consumers see each
// order's changes in sequence.
type OrderChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderChangedPublisher connects to the broker and returns a publisher
// for the given topic.
func NewOrderChangedPublisher(host, topic string) (*OrderChangedPublisher, error) {
	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	conf.Producer.Return.Errors = true
	conf.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer([]string{host}, conf)
	if err != nil {
		return nil, fmt.Errorf("connect to kafka at %s: %w", host, err)
	}

	return &OrderChangedPublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// PublishOrderChanged sends the order's current state to the topic.
func (p *OrderChangedPublisher) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	event := orderChangedEvent{
		OrderID:     aggregate.ID().String(),
		Kind:        aggregate.Kind().String(),
		Mode:        aggregate.Mode().String(),
		Status:      aggregate.Status().String(),
		Approved:    aggregate.IsApproved(),
		TotalAmount: aggregate.TotalAmount(),
	}
	for _, line := range aggregate.Lines() {
		event.Lines = append(event.Lines, orderEventLine{
			LineID:       line.ID().String(),
			SKU:          line.SKU(),
			RequestedQty: line.RequestedQty(),
			PickedQty:    line.PickedQty(),
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

// Close shuts the underlying producer down.
func (p *OrderChangedPublisher) Close() error {
	return p.producer.Close()
}
