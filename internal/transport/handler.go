// Package transport exposes the burn check JSON API.
package transport

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/burnsentry/burnsentry-backend/internal/chain"
	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/burnsentry/burnsentry-backend/internal/service"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BurnCheckService renders burn verdicts and optionally relays.
	BurnCheckService interface {
		CheckBurn(ctx context.Context, rawTx []byte) (model.Verdict, error)
		CheckAndRelay(ctx context.Context, rawTx []byte) (model.Verdict, string, error)
	}

	// VerdictStore reads back the audit log.
	VerdictStore interface {
		RecentVerdicts(ctx context.Context, coin model.Coin, network model.Network, limit uint64) ([]model.VerdictRecord, error)
	}
)

const defaultVerdictsLimit = 50

// Handler serves the burn check API.
type Handler struct {
	svc     BurnCheckService
	store   VerdictStore
	coin    model.Coin
	network model.Network
	logger  *zap.Logger
}

// NewHandler constructs the API handler. store may be nil when the audit
// log is disabled.
func NewHandler(svc BurnCheckService, store VerdictStore, coin model.Coin, network model.Network, logger *zap.Logger) *Handler {
	return &Handler{
		svc:     svc,
		store:   store,
		coin:    coin,
		network: network,
		logger:  logger,
	}
}

// Routes returns the API route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/check", h.check)
	mux.HandleFunc("POST /v1/relay", h.relay)
	mux.HandleFunc("GET /v1/verdicts", h.verdicts)
	mux.HandleFunc("GET /healthz", h.health)
	return mux
}

type checkRequest struct {
	RawTx string `json:"raw_tx"`
}

type checkResponse struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason,omitempty"`
	TxID    string `json:"txid,omitempty"`
}

type errorResponse struct {
	ErrorKind string `json:"error_kind"`
	Error     string `json:"error"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	rawTx, ok := h.decodeRawTx(w, r)
	if !ok {
		return
	}

	verdict, err := h.svc.CheckBurn(r.Context(), rawTx)
	if err != nil {
		h.writeCheckError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, verdictResponse(verdict, ""))
}

func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	rawTx, ok := h.decodeRawTx(w, r)
	if !ok {
		return
	}

	verdict, txid, err := h.svc.CheckAndRelay(r.Context(), rawTx)
	if err != nil {
		h.writeCheckError(w, err)
		return
	}
	if !verdict.Accepted {
		h.writeJSON(w, http.StatusUnprocessableEntity, verdictResponse(verdict, ""))
		return
	}

	h.writeJSON(w, http.StatusOK, verdictResponse(verdict, txid))
}

func (h *Handler) verdicts(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			ErrorKind: "audit_disabled",
			Error:     "audit log is not configured",
		})
		return
	}

	limit := uint64(defaultVerdictsLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{
				ErrorKind: "bad_request",
				Error:     "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	records, err := h.store.RecentVerdicts(r.Context(), h.coin, h.network, limit)
	if err != nil {
		h.logger.Error("recent verdicts query failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			ErrorKind: "internal",
			Error:     "query failed",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"verdicts": records})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRawTx(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			ErrorKind: "bad_request",
			Error:     "invalid JSON body",
		})
		return nil, false
	}

	rawTx, err := hex.DecodeString(req.RawTx)
	if err != nil || len(rawTx) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			ErrorKind: "bad_request",
			Error:     "raw_tx must be non-empty hex",
		})
		return nil, false
	}

	return rawTx, true
}

// writeCheckError maps core error kinds onto HTTP statuses so clients can
// tell "transaction is malformed" from "retry later".
func (h *Handler) writeCheckError(w http.ResponseWriter, err error) {
	var (
		decodeErr     *chain.DecodeError
		resolutionErr *service.InputResolutionError
		oracleErr     *service.ProvenanceOracleError
	)

	switch {
	case errors.As(err, &decodeErr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			ErrorKind: "decode",
			Error:     err.Error(),
		})
	case errors.As(err, &resolutionErr):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			ErrorKind: "input_resolution",
			Error:     err.Error(),
		})
	case errors.As(err, &oracleErr):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			ErrorKind: "provenance_oracle",
			Error:     err.Error(),
		})
	default:
		h.logger.Error("burn check failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			ErrorKind: "internal",
			Error:     "burn check failed",
		})
	}
}

func verdictResponse(verdict model.Verdict, txid string) checkResponse {
	resp := checkResponse{Verdict: "rejected", TxID: txid}
	if verdict.Accepted {
		resp.Verdict = "accepted"
	}
	resp.Reason = string(verdict.Reason)
	return resp
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}
