package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/blog-api/internal/logger"
)

const publishedQueueName = "blog.published"

// Publisher emits events to a RabbitMQ broker. A nil Publisher (or one with
// an empty URL) is valid and publishes nothing, so the API runs unchanged
// when no broker is configured.
type Publisher struct {
	URL string
}

// NewPublisher returns a Publisher for the given AMQP URL, or nil when the
// URL is empty.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{URL: url}
}

// PublishBlogPublished sends a BlogPublishedEvent to the blog.published
// queue. The queue is declared durable and messages are persistent. Any
// error is logged and returned; callers treat publishing as fire-and-forget.
func (p *Publisher) PublishBlogPublished(ctx context.Context, event BlogPublishedEvent) error {
	if p == nil || p.URL == "" {
		return nil
	}
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		logger.Log.Warnw("rabbitmq dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Log.Warnw("rabbitmq channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(publishedQueueName, true, false, false, false, nil); err != nil {
		logger.Log.Warnw("rabbitmq queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Log.Warnw("rabbitmq marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", publishedQueueName, false, false, pub); err != nil {
		logger.Log.Warnw("rabbitmq publish failed", "err", err)
		return err
	}
	return nil
}
