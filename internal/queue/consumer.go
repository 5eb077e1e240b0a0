package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Consumer reads directory events from the broker and appends one
// human-friendly line per event to a sink (logs/directory.log in
// cmd/eventlog).
type Consumer struct {
	url   string
	queue string
	log   logrus.FieldLogger

	mu   sync.Mutex
	sink io.Writer
}

// NewConsumer returns a consumer for the broker at url writing to sink.
func NewConsumer(url string, sink io.Writer, log logrus.FieldLogger) *Consumer {
	return &Consumer{url: url, queue: EventsQueue, sink: sink, log: log}
}

// Run keeps consuming until ctx is cancelled, reconnecting with an
// exponential backoff capped at 30 seconds.  Messages that cannot be
// handled are rejected without requeue so a bad payload cannot loop.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.WithError(err).Warnf("failed to dial broker; retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.WithError(err).Warn("consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.WithError(err).Warn("set QoS failed")
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handleMessage(d.Body); err != nil {
			c.log.WithError(err).WithField("message_id", d.MessageId).Error("handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func (c *Consumer) handleMessage(body []byte) error {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Type == "" {
		return errors.New("event without type")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.sink, formatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// formatLine renders an event as a single log line.
func formatLine(ev Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | event_id=%s", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type, ev.ID)
	if ev.EntityID != 0 {
		fmt.Fprintf(&b, " | id=%d", ev.EntityID)
	}
	if ev.Name != "" {
		fmt.Fprintf(&b, " | name=%q", ev.Name)
	}
	if ev.Show != nil {
		fmt.Fprintf(&b, " | venue_id=%d | artist_id=%d | start_time=%s",
			ev.Show.VenueID, ev.Show.ArtistID, ev.Show.StartTime.UTC().Format(time.RFC3339))
	}
	b.WriteByte('\n')
	return b.String()
}
