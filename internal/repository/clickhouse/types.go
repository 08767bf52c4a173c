package clickhouse

import (
	"context"
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}

	// Batch is the subset of the driver batch the repository uses.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Rows is the subset of the driver result set the repository uses.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Close() error
		Err() error
	}

	// Conn is the repository's view of a ClickHouse connection.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Close() error
	}
)
