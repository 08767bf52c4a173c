package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
)

func recentVerdictsQuery() string {
	return `
SELECT
	coin,
	network,
	txid,
	op_kind,
	token_id,
	accepted,
	reason,
	checked_at,
	duration_ms
FROM burn_verdicts
WHERE coin = ? AND network = ?
ORDER BY checked_at DESC
LIMIT ?`
}

// RecentVerdicts returns the newest audit records for a network.
func (r *Repository) RecentVerdicts(ctx context.Context, coin model.Coin, network model.Network, limit uint64) (records []model.VerdictRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_verdicts", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, recentVerdictsQuery(), coin, network, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent verdicts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			rowCoin    string
			rowNetwork string
			txid       string
			opKind     string
			tokenID    string
			accepted   uint8
			reason     string
			checkedAt  time.Time
			durationMS uint64
		)
		if err = rows.Scan(&rowCoin, &rowNetwork, &txid, &opKind, &tokenID, &accepted, &reason, &checkedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scan verdict row: %w", err)
		}
		records = append(records, model.VerdictRecord{
			Coin:       model.Coin(rowCoin),
			Network:    model.Network(rowNetwork),
			TxID:       txid,
			OpKind:     model.OpKind(opKind),
			TokenID:    tokenID,
			Accepted:   accepted == 1,
			Reason:     model.RejectReason(reason),
			CheckedAt:  checkedAt,
			DurationMS: durationMS,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verdict rows: %w", err)
	}

	return records, nil
}
