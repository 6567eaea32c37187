package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/config"
)

const (
	ExchangeName  = "reminders-exchange"
	MainQueueName = "reminders"
	DLQName       = "reminders-dlq"
	RoutingKey    = "reminders"
)

// ReminderMessage is a due task handed to the delivery workers. It only
// carries the dispatch id; workers always reload the record.
type ReminderMessage struct {
	ID        uuid.UUID `json:"id"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// ReminderQueue is the work queue between the pump and the delivery workers.
type ReminderQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// Names resolves queue topology names, falling back to the defaults.
func Names(cfg config.RabbitMQ) (exchange, queue, dlq, routingKey string) {
	exchange, queue, dlq, routingKey = cfg.Exchange, cfg.Queue, cfg.DLQ, cfg.RoutingKey
	if exchange == "" {
		exchange = ExchangeName
	}
	if queue == "" {
		queue = MainQueueName
	}
	if dlq == "" {
		dlq = DLQName
	}
	if routingKey == "" {
		routingKey = RoutingKey
	}

	return exchange, queue, dlq, routingKey
}

// NewReminderQueue declares the exchange, the work queue and its dead
// letter queue, and binds them together.
func NewReminderQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*ReminderQueue, error) {
	exchangeName, queueName, dlqName, routingKey := Names(cfg)

	exchange := rabbitmq.NewExchange(exchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(dlqName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}

	mainQ, err := qm.DeclareQueue(queueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, routingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &ReminderQueue{Publisher: pub, Consumer: cons, routingKey: routingKey}, nil
}

// Publish sends a due task to the workers.
func (q *ReminderQueue) Publish(msg ReminderMessage, strategy retry.Strategy) error {
	body, err := Encode(msg)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume forwards decoded tasks to out until ctx is done or the consumer stops.
func (q *ReminderQueue) Consume(ctx context.Context, out chan<- ReminderMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- ReminderMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			msg, err := Decode(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Encode serializes a task for the wire.
func Encode(msg ReminderMessage) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return body, nil
}

// Decode parses a task received from the wire.
func Decode(body []byte) (ReminderMessage, error) {
	var msg ReminderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ReminderMessage{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	if msg.ID == uuid.Nil {
		return ReminderMessage{}, errors.New("message without dispatch id")
	}

	return msg, nil
}
