// Package clickhouse stores finalized author rows in ClickHouse.
package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}
