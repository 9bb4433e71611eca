// Package nats carries the analyze-request jobs between the API and the
// worker over a core NATS queue group.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/heladerias/audit-vision/internal/core/ports"
	"github.com/heladerias/audit-vision/internal/infrastructure/resilience"
)

// workerGroup is the queue group name; every worker instance joins it so each
// analyze request is delivered to exactly one of them.
const workerGroup = "workers"

type Queue struct {
	conn     *nats.Conn
	subject  string
	executor *resilience.Executor
}

type Options struct {
	ConnectTimeout       time.Duration
	ReconnectWait        time.Duration
	MaxReconnects        int
	RetryOnFailedConnect *bool
	ResilienceExecutor   *resilience.Executor
}

func New(url, subject string) (*Queue, error) {
	return NewWithOptions(url, subject, Options{})
}

func NewWithOptions(url, subject string, options Options) (*Queue, error) {
	if options.ConnectTimeout <= 0 {
		options.ConnectTimeout = 2 * time.Second
	}
	if options.ReconnectWait <= 0 {
		options.ReconnectWait = 2 * time.Second
	}
	if options.MaxReconnects <= 0 {
		options.MaxReconnects = 60
	}
	retryOnFailedConnect := options.RetryOnFailedConnect == nil || *options.RetryOnFailedConnect

	conn, err := nats.Connect(
		url,
		nats.Name("audit-vision"),
		nats.Timeout(options.ConnectTimeout),
		nats.ReconnectWait(options.ReconnectWait),
		nats.MaxReconnects(options.MaxReconnects),
		nats.RetryOnFailedConnect(retryOnFailedConnect),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Queue{conn: conn, subject: subject, executor: options.ResilienceExecutor}, nil
}

func (q *Queue) Close() {
	if q.conn != nil {
		q.conn.Close()
	}
}

func (q *Queue) PublishAnalyzeRequested(ctx context.Context, req ports.AnalyzeRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal analyze request: %w", err)
	}

	publish := func(context.Context) error {
		if err := q.conn.Publish(q.subject, payload); err != nil {
			return fmt.Errorf("nats publish: %w", err)
		}
		return nil
	}
	if q.executor != nil {
		err = q.executor.Execute(ctx, "nats.publish", publish, classifyNATSError)
	} else {
		err = publish(ctx)
	}
	return wrapTemporaryIfNeeded(err)
}

// SubscribeAnalyzeRequested blocks consuming analyze requests until ctx is
// cancelled, then drains the subscription. Malformed messages are discarded:
// redelivering them cannot make them parse.
func (q *Queue) SubscribeAnalyzeRequested(ctx context.Context, handler func(context.Context, ports.AnalyzeRequest) error) error {
	sub, err := q.conn.QueueSubscribe(q.subject, workerGroup, func(msg *nats.Msg) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		var req ports.AnalyzeRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			slog.Warn("discarding malformed analyze request", "error", err)
			return
		}

		handlerCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := handler(handlerCtx, req); err != nil {
			slog.Error("analyze handler failed",
				"local", req.Local, "fecha", req.Fecha, "item_id", req.ItemID, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}
	if err := q.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	if err := q.conn.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("nats flush after drain: %w", err)
	}
	return nil
}
