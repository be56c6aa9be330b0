package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

const (
	// EventsQueue очередь, куда попадают все события подписок.
	EventsQueue = "subscriptions.events"
	// EventsBinding ключ привязки очереди к exchange.
	EventsBinding = "subscription.*"
)

// SetupChannel открывает канал и объявляет topic exchange с очередью событий.
func SetupChannel(conn *amqp.Connection, exchange string) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		EventsQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, EventsQueue, err)
	}

	err = ch.QueueBind(EventsQueue, EventsBinding, exchange, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, EventsQueue, err)
	}

	return ch, nil
}
