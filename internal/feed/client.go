// Package feed connects to a telemetry feed over WebSocket and turns its
// frames into typed events for the observer.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/clock"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const reconnectDelay = 5 * time.Second

// Metrics tracks feed transport and decoding.
type Metrics interface {
	ObserveConnect(err error, started time.Time)
	ObserveFrame(kind string, err error)
}

// Client subscribes to a telemetry feed and pushes decoded events into a
// channel. It reconnects with a fixed delay on every failure or stream end
// and never gives up.
type Client struct {
	url            string
	genesisHash    string
	logger         *zap.Logger
	metrics        Metrics
	reconnectDelay time.Duration
}

// NewClient validates the feed URL and builds a Client. A URL that does not
// parse, or is not a ws/wss endpoint, is a configuration error.
func NewClient(feedURL, genesisHash string, metrics Metrics, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	if parsed.Scheme != "ws" && parsed.Scheme != "wss" {
		return nil, fmt.Errorf("feed url scheme %q not supported, use ws or wss", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("feed url missing host")
	}
	if metrics == nil {
		return nil, errors.New("feed metrics is required")
	}

	return &Client{
		url:            feedURL,
		genesisHash:    genesisHash,
		logger:         logger,
		metrics:        metrics,
		reconnectDelay: reconnectDelay,
	}, nil
}

// Run dials, subscribes, and reads frames until the context is canceled.
// Connection and stream failures are never fatal.
func (c *Client) Run(ctx context.Context, events chan<- model.Event) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := c.connectAndRead(ctx, events); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("feed connection lost", zap.Error(err))
		}

		c.logger.Info("reconnecting to feed", zap.Duration("delay", c.reconnectDelay))
		if err := clock.SleepWithContext(ctx, c.reconnectDelay); err != nil {
			return err
		}
	}
}

func (c *Client) connectAndRead(ctx context.Context, events chan<- model.Event) error {
	started := time.Now()
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	c.metrics.ObserveConnect(err, started)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	subscribe := "subscribe:" + c.genesisHash
	if err := conn.WriteMessage(websocket.TextMessage, []byte(subscribe)); err != nil {
		return fmt.Errorf("send subscription: %w", err)
	}
	c.logger.Info("subscribed to feed",
		zap.String("url", c.url),
		zap.String("genesis", c.genesisHash),
	)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		ev, err := DecodeFrame(data)
		if err != nil {
			c.metrics.ObserveFrame("invalid", err)
			c.logger.Debug("dropped undecodable frame", zap.Error(err))
			continue
		}
		if ev == nil {
			c.metrics.ObserveFrame("ignored", nil)
			continue
		}
		c.metrics.ObserveFrame(eventKind(ev), nil)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case events <- ev:
		}
	}
}

func eventKind(ev model.Event) string {
	switch ev.(type) {
	case model.NodeAnnounce:
		return "node_announce"
	case model.BlockImport:
		return "block_import"
	default:
		return "unknown"
	}
}
