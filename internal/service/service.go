package service

import (
	"bytes"
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/burnsentry/burnsentry-backend/internal/chain"
	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/burnsentry/burnsentry-backend/pkg/safe"
	"go.uber.org/zap"
)

// BurnChecker is the service entry point: it hydrates a candidate, resolves
// the provenance of its inputs and applies the conservation rules.
type BurnChecker struct {
	coin        model.Coin
	network     model.Network
	hydrator    Hydrator
	resolver    Resolver
	validator   *ConservationValidator
	broadcaster Broadcaster
	audit       AuditSink
	metrics     VerdictMetrics
	logger      *zap.Logger
}

// NewBurnChecker constructs the checker. broadcaster may be nil when relaying
// is not exposed; audit may be nil to disable the audit log.
func NewBurnChecker(
	coin model.Coin,
	network model.Network,
	hydrator Hydrator,
	resolver Resolver,
	broadcaster Broadcaster,
	audit AuditSink,
	metrics VerdictMetrics,
	logger *zap.Logger,
) *BurnChecker {
	return &BurnChecker{
		coin:        coin,
		network:     network,
		hydrator:    hydrator,
		resolver:    resolver,
		validator:   NewConservationValidator(),
		broadcaster: broadcaster,
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
	}
}

// CheckBurn renders the burn verdict for a serialized candidate transaction.
// Errors are resolution failures ("could not determine"), never conservation
// rejections ("determined unsafe"); those come back as the Verdict.
func (s *BurnChecker) CheckBurn(ctx context.Context, rawTx []byte) (model.Verdict, error) {
	verdict, _, err := s.check(ctx, rawTx)
	return verdict, err
}

// CheckAndRelay runs the burn check and broadcasts the transaction only on
// an accepting verdict. Returns the broadcast txid when relayed.
func (s *BurnChecker) CheckAndRelay(ctx context.Context, rawTx []byte) (model.Verdict, string, error) {
	verdict, candidate, err := s.check(ctx, rawTx)
	if err != nil {
		return model.Verdict{}, "", err
	}
	if !verdict.Accepted {
		return verdict, "", nil
	}

	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(rawTx)); err != nil {
		// Hydration already decoded these bytes, this cannot happen.
		return verdict, "", &chain.DecodeError{Err: err}
	}

	hash, err := s.broadcaster.SendRawTransaction(&msgTx, false)
	if err != nil {
		return verdict, "", &chain.FetchError{TxID: candidate.TxID, Err: err}
	}

	s.logger.Info("transaction relayed",
		zap.String("txid", hash.String()),
		zap.String("op", string(candidate.TokenOp.Kind)),
	)
	return verdict, hash.String(), nil
}

func (s *BurnChecker) check(ctx context.Context, rawTx []byte) (model.Verdict, *model.Transaction, error) {
	started := time.Now()

	candidate, err := s.hydrator.HydrateRaw(rawTx)
	if err != nil {
		s.observeFailure(err, started)
		return model.Verdict{}, nil, err
	}

	var resolved []model.VerdictedTransaction
	if candidate.TokenOp.Kind != model.OpNone {
		// Non-overlay candidates accept unconditionally, no need to touch
		// the node or the oracle for them.
		resolved, err = s.resolver.Resolve(ctx, candidate.Inputs)
		if err != nil {
			s.observeFailure(err, started)
			return model.Verdict{}, nil, err
		}
	}

	verdict := s.validator.Validate(candidate, resolved)
	s.observeVerdict(ctx, candidate, verdict, started)
	return verdict, candidate, nil
}

func (s *BurnChecker) observeVerdict(ctx context.Context, candidate *model.Transaction, verdict model.Verdict, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveVerdict(candidate.TokenOp.Kind, verdict, started)
	}
	if s.logger != nil {
		s.logger.Info("burn check verdict",
			zap.String("txid", candidate.TxID),
			zap.String("op", string(candidate.TokenOp.Kind)),
			zap.Bool("accepted", verdict.Accepted),
			zap.String("reason", string(verdict.Reason)),
		)
	}
	if s.audit == nil {
		return
	}

	durationMS, err := safe.Uint64(time.Since(started).Milliseconds())
	if err != nil {
		durationMS = 0
	}
	record := model.VerdictRecord{
		Coin:       s.coin,
		Network:    s.network,
		TxID:       candidate.TxID,
		OpKind:     candidate.TokenOp.Kind,
		TokenID:    candidate.TokenOp.TokenID,
		Accepted:   verdict.Accepted,
		Reason:     verdict.Reason,
		CheckedAt:  started.UTC(),
		DurationMS: durationMS,
	}
	if err := s.audit.Add(ctx, record); err != nil && s.logger != nil {
		s.logger.Warn("audit record dropped", zap.String("txid", candidate.TxID), zap.Error(err))
	}
}

func (s *BurnChecker) observeFailure(err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveFailure(err, started)
	}
	if s.logger != nil {
		s.logger.Error("burn check failed", zap.Error(err))
	}
}
