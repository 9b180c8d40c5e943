package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishPaymentCreatedEvent sends the payment event to Kafka. A missing
// broker or topic disables publishing silently so local setups work without
// Kafka.
func PublishPaymentCreatedEvent(sc *svc.ServiceContext, evt PaymentCreatedEvent) error {
	return publish(sc.Config.KafkaConf.Broker, sc.Config.KafkaConf.PaymentTopic, evt)
}

// PublishOrderCancelledEvent sends the cancellation event to Kafka.
func PublishOrderCancelledEvent(sc *svc.ServiceContext, evt OrderCancelledEvent) error {
	return publish(sc.Config.KafkaConf.Broker, sc.Config.KafkaConf.OrderTopic, evt)
}

func publish(brokers []string, topic string, evt any) error {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	defer w.Close()
	return w.WriteMessages(context.Background(), kafka.Message{Value: body})
}
