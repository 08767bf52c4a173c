package service

import (
	"context"

	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/burnsentry/burnsentry-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultResolverWorkers = 8

// ProvenanceResolver resolves the parents of a candidate's inputs: for each
// distinct parent txid it concurrently hydrates the parent and requests a
// trust verdict for it. Resolution is all or nothing; a single failed parent
// fails the whole request, no partial verdicts are ever returned.
type ProvenanceResolver struct {
	hydrator    Hydrator
	verdicts    VerdictProvider
	workerCount int
	logger      *zap.Logger
}

// NewProvenanceResolver constructs a resolver with a bounded fan-out.
func NewProvenanceResolver(hydrator Hydrator, verdicts VerdictProvider, workerCount int, logger *zap.Logger) *ProvenanceResolver {
	if workerCount <= 0 {
		workerCount = defaultResolverWorkers
	}
	return &ProvenanceResolver{
		hydrator:    hydrator,
		verdicts:    verdicts,
		workerCount: workerCount,
		logger:      logger,
	}
}

type resolvedParent struct {
	tx      *model.Transaction
	verdict model.ProvenanceVerdict
}

type parentJob struct {
	idx  int
	txid string
}

// Resolve returns one VerdictedTransaction per input, in input order.
// Inputs spending the same parent share one resolved Transaction; the
// Parent link on each input is filled in as a side effect.
func (r *ProvenanceResolver) Resolve(ctx context.Context, inputs []model.Input) ([]model.VerdictedTransaction, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	jobIndex := make(map[string]int, len(inputs))
	jobs := make([]parentJob, 0, len(inputs))
	for _, input := range inputs {
		if _, seen := jobIndex[input.PrevTxID]; seen {
			continue
		}
		jobIndex[input.PrevTxID] = len(jobs)
		jobs = append(jobs, parentJob{idx: len(jobs), txid: input.PrevTxID})
	}

	// Each job writes only its own slot, no locking needed.
	results := make([]resolvedParent, len(jobs))

	err := workerpool.Process(ctx, r.workerCount, jobs, func(ctx context.Context, job parentJob) error {
		return r.resolveParent(ctx, job, results)
	})
	if err != nil {
		return nil, err
	}

	resolved := make([]model.VerdictedTransaction, 0, len(inputs))
	for i := range inputs {
		parent := results[jobIndex[inputs[i].PrevTxID]]
		inputs[i].Parent = parent.tx
		resolved = append(resolved, model.VerdictedTransaction{
			Parent:  parent.tx,
			Verdict: parent.verdict,
			Vout:    inputs[i].PrevVout,
		})
	}
	return resolved, nil
}

type hydrateResult struct {
	tx  *model.Transaction
	err error
}

func (r *ProvenanceResolver) resolveParent(ctx context.Context, job parentJob, results []resolvedParent) error {
	// Hydration goes in flight first; the verdict request for the same
	// parent rides alongside it on the calling goroutine.
	hydrateCh := make(chan hydrateResult, 1)
	go func() {
		tx, err := r.hydrator.HydrateTxID(ctx, job.txid)
		hydrateCh <- hydrateResult{tx: tx, err: err}
	}()

	verdict, verdictErr := r.verdicts.VerdictFor(ctx, job.txid, false)

	// Always join the hydration so no goroutine outlives the request.
	hydrated := <-hydrateCh

	if hydrated.err != nil {
		if r.logger != nil {
			r.logger.Error("parent hydration failed", zap.String("txid", job.txid), zap.Error(hydrated.err))
		}
		return &InputResolutionError{TxID: job.txid, Err: hydrated.err}
	}
	if verdictErr != nil {
		if r.logger != nil {
			r.logger.Error("provenance verdict failed", zap.String("txid", job.txid), zap.Error(verdictErr))
		}
		return &ProvenanceOracleError{TxID: job.txid, Err: verdictErr}
	}

	results[job.idx] = resolvedParent{tx: hydrated.tx, verdict: verdict}
	return nil
}
