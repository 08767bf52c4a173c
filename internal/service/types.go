// Package service implements the burn check core: provenance resolution and
// token conservation validation.
package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/burnsentry/burnsentry-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Hydrator decodes candidate and parent transactions.
	Hydrator interface {
		HydrateRaw(raw []byte) (*model.Transaction, error)
		HydrateTxID(ctx context.Context, txid string) (*model.Transaction, error)
	}

	// VerdictProvider supplies provenance verdicts from the trust service.
	VerdictProvider interface {
		VerdictFor(ctx context.Context, txid string, reversedByteOrder bool) (model.ProvenanceVerdict, error)
	}

	// Resolver resolves candidate inputs into verdicted parent transactions.
	Resolver interface {
		Resolve(ctx context.Context, inputs []model.Input) ([]model.VerdictedTransaction, error)
	}

	// Broadcaster relays a transaction to the network.
	Broadcaster interface {
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
	}

	// AuditSink records rendered verdicts. Implementations must not block
	// the check path beyond enqueueing.
	AuditSink interface {
		Add(ctx context.Context, record model.VerdictRecord) error
	}

	// VerdictMetrics records check outcomes.
	VerdictMetrics interface {
		ObserveVerdict(op model.OpKind, verdict model.Verdict, started time.Time)
		ObserveFailure(err error, started time.Time)
	}
)
