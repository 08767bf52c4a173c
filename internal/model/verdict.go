package model

import "time"

// RejectReason names a conservation violation. Values are stable strings
// exposed through the API and the audit log.
type RejectReason string

const (
	ReasonMalformedMetadata         RejectReason = "malformed_overlay_metadata"
	ReasonMixedTokenInputs          RejectReason = "mixed_token_inputs"
	ReasonGenesisConsumesBaton      RejectReason = "genesis_consumes_baton"
	ReasonBatonBurnedAtCreation     RejectReason = "baton_burned_at_creation"
	ReasonNoBatonInput              RejectReason = "no_baton_input"
	ReasonUnexpectedTokenValueInput RejectReason = "unexpected_token_value_input"
	ReasonBatonNotReissued          RejectReason = "baton_not_reissued"
	ReasonNoMintCredit              RejectReason = "no_mint_credit"
	ReasonBatonBurned               RejectReason = "baton_burned"
	ReasonBatonBurnedBySend         RejectReason = "baton_burned_by_send"
	ReasonOutputsExceedInputs       RejectReason = "outputs_exceed_inputs"
	ReasonMissingTransferOutputs    RejectReason = "missing_transfer_outputs"
	ReasonValueBurned               RejectReason = "value_burned"
)

// Verdict is the validator's decision for a candidate transaction.
type Verdict struct {
	Accepted bool
	Reason   RejectReason
}

func Accept() Verdict {
	return Verdict{Accepted: true}
}

func Reject(reason RejectReason) Verdict {
	return Verdict{Reason: reason}
}

// ProvenanceVerdict is the trust service's assertion about a parent
// transaction's token history.
type ProvenanceVerdict struct {
	Valid bool
}

// VerdictedTransaction pairs a resolved parent transaction with its trust
// verdict and the output index the candidate spends from it.
type VerdictedTransaction struct {
	Parent  *Transaction
	Verdict ProvenanceVerdict
	Vout    uint32
}

// VerdictRecord is one audit-log row describing a rendered verdict.
type VerdictRecord struct {
	Coin       Coin         `json:"coin"`
	Network    Network      `json:"network"`
	TxID       string       `json:"txid"`
	OpKind     OpKind       `json:"op_kind"`
	TokenID    string       `json:"token_id,omitempty"`
	Accepted   bool         `json:"accepted"`
	Reason     RejectReason `json:"reason,omitempty"`
	CheckedAt  time.Time    `json:"checked_at"`
	DurationMS uint64       `json:"duration_ms"`
}
