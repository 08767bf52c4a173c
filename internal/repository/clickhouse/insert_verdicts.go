package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
)

func insertVerdictsQuery() string {
	return `
INSERT INTO burn_verdicts (
	coin,
	network,
	txid,
	op_kind,
	token_id,
	accepted,
	reason,
	checked_at,
	duration_ms
) VALUES`
}

// InsertVerdicts stores audit records in ClickHouse.
func (r *Repository) InsertVerdicts(ctx context.Context, records []model.VerdictRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verdicts", firstCoin(records), firstNetwork(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertVerdictsQuery())
	if err != nil {
		return fmt.Errorf("prepare verdicts batch: %w", err)
	}

	for _, record := range records {
		accepted := uint8(0)
		if record.Accepted {
			accepted = 1
		}
		if err = batch.Append(
			string(record.Coin),
			string(record.Network),
			record.TxID,
			string(record.OpKind),
			record.TokenID,
			accepted,
			string(record.Reason),
			record.CheckedAt,
			record.DurationMS,
		); err != nil {
			return fmt.Errorf("append verdict: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verdicts: %w", err)
	}
	return nil
}

func firstCoin(records []model.VerdictRecord) model.Coin {
	if len(records) == 0 {
		return ""
	}
	return records[0].Coin
}

func firstNetwork(records []model.VerdictRecord) model.Network {
	if len(records) == 0 {
		return ""
	}
	return records[0].Network
}
