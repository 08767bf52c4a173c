package service

import (
	"math/big"

	"github.com/burnsentry/burnsentry-backend/internal/model"
)

// ConservationValidator applies the per-type token conservation rules to a
// candidate transaction. It is a pure decision function: rejection checks
// run in a fixed order so the same candidate always yields the same reason.
//
// Policy notes:
//   - Trust verdicts gate mint-baton legitimacy only. An input whose
//     provenance verdict is invalid still contributes its token value to
//     the input sum: treating possibly-real value as absent could accept a
//     transaction that destroys it.
//   - Send conservation is exact. Any shortfall between token inputs and
//     outputs is a burn, there is no partial-burn allowance.
//
// TODO: thread a burn-tolerance option through the Send path once the relay
// policy allows caller-specified partial burns.
type ConservationValidator struct{}

func NewConservationValidator() *ConservationValidator {
	return &ConservationValidator{}
}

// Validate renders the verdict for a hydrated candidate given its resolved
// and verdicted inputs.
func (v *ConservationValidator) Validate(candidate *model.Transaction, resolved []model.VerdictedTransaction) model.Verdict {
	op := candidate.TokenOp

	switch op.Kind {
	case model.OpNone:
		// A non-overlay transaction cannot burn overlay tokens.
		return model.Accept()
	case model.OpMalformed:
		return model.Reject(model.ReasonMalformedMetadata)
	}

	totalInput := new(big.Int)
	hasMintBaton := false
	var (
		inputTokenType uint16
		inputTokenID   string
		seenValue      bool
	)

	for _, rv := range resolved {
		if rv.Parent != nil && rv.Parent.TokenOp.Kind == model.OpMalformed {
			// The token value behind a malformed parent is unknowable.
			return model.Reject(model.ReasonMalformedMetadata)
		}

		tc := tokenContextFor(rv)
		if tc.IsMintBaton && rv.Verdict.Valid {
			hasMintBaton = true
		}
		if tc.Value == nil || tc.Value.Sign() <= 0 {
			continue
		}
		if !seenValue {
			inputTokenType = tc.TokenType
			inputTokenID = tc.TokenID
			seenValue = true
		} else if tc.TokenType != inputTokenType || tc.TokenID != inputTokenID {
			// Ambiguity about which token is moving is a burn risk.
			return model.Reject(model.ReasonMixedTokenInputs)
		}
		totalInput.Add(totalInput, tc.Value)
	}

	switch op.Kind {
	case model.OpGenesis:
		return validateGenesis(candidate, op.Genesis, hasMintBaton)
	case model.OpMint:
		return validateMint(candidate, op.Mint, totalInput, hasMintBaton)
	case model.OpSend:
		return validateSend(candidate, op.Send, totalInput, hasMintBaton)
	}

	return model.Accept()
}

func validateGenesis(candidate *model.Transaction, genesis *model.GenesisOp, hasMintBaton bool) model.Verdict {
	if hasMintBaton {
		// Creation must not consume an existing baton.
		return model.Reject(model.ReasonGenesisConsumesBaton)
	}
	if genesis.MintBatonVout != 0 && int(genesis.MintBatonVout) >= len(candidate.Outputs) {
		// The declared baton output does not exist, the baton would be
		// destroyed the moment it is created.
		return model.Reject(model.ReasonBatonBurnedAtCreation)
	}
	// No prior supply exists to conserve.
	return model.Accept()
}

func validateMint(candidate *model.Transaction, mint *model.MintOp, totalInput *big.Int, hasMintBaton bool) model.Verdict {
	if !hasMintBaton {
		return model.Reject(model.ReasonNoBatonInput)
	}
	if totalInput.Sign() > 0 {
		// A mint consumes the baton, never ordinary token value.
		return model.Reject(model.ReasonUnexpectedTokenValueInput)
	}
	if mint.MintBatonVout == 0 {
		return model.Reject(model.ReasonBatonNotReissued)
	}
	if len(candidate.Outputs) < 2 {
		return model.Reject(model.ReasonNoMintCredit)
	}
	if int(mint.MintBatonVout) >= len(candidate.Outputs) {
		return model.Reject(model.ReasonBatonBurned)
	}
	return model.Accept()
}

func validateSend(candidate *model.Transaction, send *model.SendOp, totalInput *big.Int, hasMintBaton bool) model.Verdict {
	if hasMintBaton {
		return model.Reject(model.ReasonBatonBurnedBySend)
	}

	totalOutput := new(big.Int)
	for _, amount := range send.Amounts {
		totalOutput.Add(totalOutput, amount)
	}

	if totalOutput.Cmp(totalInput) > 0 {
		return model.Reject(model.ReasonOutputsExceedInputs)
	}
	if len(candidate.Outputs) < len(send.Amounts)+1 {
		// Output 0 carries the metadata, amounts need outputs 1..N.
		return model.Reject(model.ReasonMissingTransferOutputs)
	}
	if totalOutput.Cmp(totalInput) < 0 {
		return model.Reject(model.ReasonValueBurned)
	}
	return model.Accept()
}

// tokenContextFor computes the token-relevant view of one spent output from
// its parent's token operation.
func tokenContextFor(rv model.VerdictedTransaction) model.TokenContext {
	parent := rv.Parent
	if parent == nil {
		return model.TokenContext{}
	}

	op := parent.TokenOp
	vout := rv.Vout

	switch op.Kind {
	case model.OpSend:
		idx := int(vout) - 1
		if vout >= 1 && idx < len(op.Send.Amounts) {
			return model.TokenContext{
				TokenType: op.TokenType,
				TokenID:   op.TokenID,
				Value:     op.Send.Amounts[idx],
			}
		}
	case model.OpGenesis:
		// A genesis transaction's token id is its own txid.
		return issuanceContext(op.TokenType, parent.TxID, op.Genesis.InitialQty, op.Genesis.MintBatonVout, vout, len(parent.Outputs))
	case model.OpMint:
		return issuanceContext(op.TokenType, op.TokenID, op.Mint.Qty, op.Mint.MintBatonVout, vout, len(parent.Outputs))
	}

	return model.TokenContext{}
}

// issuanceContext covers the outputs of genesis and mint parents: output 1
// carries the issued quantity, the declared baton output carries the baton.
func issuanceContext(tokenType uint16, tokenID string, qty *big.Int, batonVout, vout uint32, outputCount int) model.TokenContext {
	tc := model.TokenContext{}
	if vout == 1 {
		tc.TokenType = tokenType
		tc.TokenID = tokenID
		tc.Value = qty
	}
	if batonVout > 0 && vout == batonVout && int(batonVout) < outputCount {
		tc.TokenType = tokenType
		tc.TokenID = tokenID
		tc.IsMintBaton = true
	}
	return tc
}
