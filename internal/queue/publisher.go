// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueReservationSubmitted is the durable queue reservation events land on.
const QueueReservationSubmitted = "reservation.submitted"

// Publisher emits domain events to the broker. Publishing failures are
// returned for logging but must never interrupt the request that produced
// the event; the reservation already landed upstream.
type Publisher interface {
	PublishReservationSubmitted(ctx context.Context, event ReservationSubmittedEvent) error
}

// AMQPPublisher implements Publisher against RabbitMQ.
//
// A fresh connection is dialed per publish. Reservation volume is a handful
// per minute, and a short-lived connection sidesteps broker-restart
// reconnect handling entirely.
type AMQPPublisher struct {
	url    string
	logger *slog.Logger
}

// NewPublisher constructs a broker-backed [Publisher]. An empty url disables
// publishing and returns a no-op implementation, so deployments without a
// broker run unchanged.
func NewPublisher(url string, logger *slog.Logger) Publisher {
	if url == "" {
		logger.Info("queue_publishing_disabled")
		return NoopPublisher{}
	}
	return &AMQPPublisher{url: url, logger: logger}
}

/*
PublishReservationSubmitted publishes the event to the reservation queue.

Description: The queue is declared durable on every publish (idempotent) and
messages are marked persistent so they survive broker restarts.

Parameters:
  - ctx: context.Context
  - event: ReservationSubmittedEvent

Returns:
  - error: Dial, declare, or publish failures
*/
func (publisher *AMQPPublisher) PublishReservationSubmitted(ctx context.Context, event ReservationSubmittedEvent) error {
	connection, err := amqp.Dial(publisher.url)
	if err != nil {
		return fmt.Errorf("amqp_dial_failed: %w", err)
	}
	defer func() { _ = connection.Close() }()

	channel, err := connection.Channel()
	if err != nil {
		return fmt.Errorf("amqp_channel_failed: %w", err)
	}
	defer func() { _ = channel.Close() }()

	if _, err := channel.QueueDeclare(
		QueueReservationSubmitted,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("amqp_queue_declare_failed: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("amqp_event_encode_failed: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := channel.PublishWithContext(ctx,
		"", // default exchange
		QueueReservationSubmitted,
		false, // mandatory
		false, // immediate
		publishing,
	); err != nil {
		return fmt.Errorf("amqp_publish_failed: %w", err)
	}

	publisher.logger.Debug("reservation_event_published",
		slog.String("queue", QueueReservationSubmitted),
		slog.String("offer_type", event.OfferType),
		slog.Int("offer_id", event.OfferID),
	)

	return nil
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

// PublishReservationSubmitted implements [Publisher] by doing nothing.
func (NoopPublisher) PublishReservationSubmitted(context.Context, ReservationSubmittedEvent) error {
	return nil
}
