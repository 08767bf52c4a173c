// Package slp classifies output scripts as token overlay operations.
package slp

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/txscript"
	"github.com/burnsentry/burnsentry-backend/internal/model"
)

// lokadID is the protocol prefix pushed right after OP_RETURN.
var lokadID = []byte{0x53, 0x4c, 0x50, 0x00}

const (
	genesisFieldCount = 9
	mintFieldCount    = 5
	minSendFieldCount = 4
	maxSendAmounts    = 19
	tokenIDLength     = 32
	amountLength      = 8
	maxDecimals       = 9
)

// Classify decodes an output script into a token operation. It never fails:
// scripts that are not token payloads classify as OpNone, while payloads
// that carry the protocol prefix but do not parse classify as OpMalformed.
func Classify(script []byte) model.TokenOperation {
	pushes, ok := opReturnPushes(script)
	if !ok || len(pushes) == 0 || !bytes.Equal(pushes[0], lokadID) {
		return model.TokenOperation{Kind: model.OpNone}
	}

	op, ok := classifyFields(pushes[1:])
	if !ok {
		return model.TokenOperation{Kind: model.OpMalformed}
	}
	return op
}

func classifyFields(fields [][]byte) (model.TokenOperation, bool) {
	if len(fields) < 2 {
		return model.TokenOperation{}, false
	}

	tokenType, ok := parseTokenType(fields[0])
	if !ok {
		return model.TokenOperation{}, false
	}

	switch string(fields[1]) {
	case "GENESIS":
		return classifyGenesis(tokenType, fields)
	case "MINT":
		return classifyMint(tokenType, fields)
	case "SEND":
		return classifySend(tokenType, fields)
	default:
		return model.TokenOperation{}, false
	}
}

func classifyGenesis(tokenType uint16, fields [][]byte) (model.TokenOperation, bool) {
	if len(fields) != genesisFieldCount {
		return model.TokenOperation{}, false
	}

	docHash := fields[5]
	if len(docHash) != 0 && len(docHash) != tokenIDLength {
		return model.TokenOperation{}, false
	}
	if len(fields[6]) != 1 || fields[6][0] > maxDecimals {
		return model.TokenOperation{}, false
	}
	batonVout, ok := parseBatonVout(fields[7])
	if !ok {
		return model.TokenOperation{}, false
	}
	initialQty, ok := parseQuantity(fields[8])
	if !ok {
		return model.TokenOperation{}, false
	}

	return model.TokenOperation{
		Kind:      model.OpGenesis,
		TokenType: tokenType,
		Genesis: &model.GenesisOp{
			TickerHex:       hex.EncodeToString(fields[2]),
			NameHex:         hex.EncodeToString(fields[3]),
			DocumentURIHex:  hex.EncodeToString(fields[4]),
			DocumentHashHex: hex.EncodeToString(docHash),
			Decimals:        fields[6][0],
			MintBatonVout:   batonVout,
			InitialQty:      initialQty,
		},
	}, true
}

func classifyMint(tokenType uint16, fields [][]byte) (model.TokenOperation, bool) {
	if len(fields) != mintFieldCount {
		return model.TokenOperation{}, false
	}
	if len(fields[2]) != tokenIDLength {
		return model.TokenOperation{}, false
	}
	batonVout, ok := parseBatonVout(fields[3])
	if !ok {
		return model.TokenOperation{}, false
	}
	qty, ok := parseQuantity(fields[4])
	if !ok {
		return model.TokenOperation{}, false
	}

	return model.TokenOperation{
		Kind:      model.OpMint,
		TokenType: tokenType,
		TokenID:   hex.EncodeToString(fields[2]),
		Mint: &model.MintOp{
			MintBatonVout: batonVout,
			Qty:           qty,
		},
	}, true
}

func classifySend(tokenType uint16, fields [][]byte) (model.TokenOperation, bool) {
	if len(fields) < minSendFieldCount || len(fields) > minSendFieldCount-1+maxSendAmounts {
		return model.TokenOperation{}, false
	}
	if len(fields[2]) != tokenIDLength {
		return model.TokenOperation{}, false
	}

	amounts := make([]*big.Int, 0, len(fields)-3)
	for _, field := range fields[3:] {
		amount, ok := parseQuantity(field)
		if !ok {
			return model.TokenOperation{}, false
		}
		amounts = append(amounts, amount)
	}

	return model.TokenOperation{
		Kind:      model.OpSend,
		TokenType: tokenType,
		TokenID:   hex.EncodeToString(fields[2]),
		Send: &model.SendOp{
			Amounts: amounts,
		},
	}, true
}

func parseTokenType(field []byte) (uint16, bool) {
	switch len(field) {
	case 1:
		return uint16(field[0]), true
	case 2:
		return binary.BigEndian.Uint16(field), true
	default:
		return 0, false
	}
}

// parseBatonVout decodes the mint baton output index: an empty field means
// no baton, a single byte must point past the metadata and receiver outputs.
func parseBatonVout(field []byte) (uint32, bool) {
	switch len(field) {
	case 0:
		return 0, true
	case 1:
		if field[0] < 2 {
			return 0, false
		}
		return uint32(field[0]), true
	default:
		return 0, false
	}
}

// parseQuantity decodes a fixed-width big-endian token amount. Amounts stay
// in big.Int form end to end, the validator never narrows them.
func parseQuantity(field []byte) (*big.Int, bool) {
	if len(field) != amountLength {
		return nil, false
	}
	return new(big.Int).SetBytes(field), true
}

// opReturnPushes splits a provably unspendable script into its data pushes.
// Only plain data pushes are allowed after OP_RETURN; any other opcode
// disqualifies the script.
func opReturnPushes(script []byte) ([][]byte, bool) {
	if len(script) == 0 || script[0] != txscript.OP_RETURN {
		return nil, false
	}

	var pushes [][]byte
	i := 1
	for i < len(script) {
		opcode := script[i]
		i++

		var length int
		switch {
		case opcode >= txscript.OP_DATA_1 && opcode <= txscript.OP_DATA_75:
			length = int(opcode)
		case opcode == txscript.OP_PUSHDATA1:
			if i+1 > len(script) {
				return nil, false
			}
			length = int(script[i])
			i++
		case opcode == txscript.OP_PUSHDATA2:
			if i+2 > len(script) {
				return nil, false
			}
			length = int(binary.LittleEndian.Uint16(script[i : i+2]))
			i += 2
		case opcode == txscript.OP_PUSHDATA4:
			if i+4 > len(script) {
				return nil, false
			}
			length = int(binary.LittleEndian.Uint32(script[i : i+4]))
			i += 4
		default:
			return nil, false
		}

		if i+length > len(script) {
			return nil, false
		}
		pushes = append(pushes, script[i:i+length])
		i += length
	}

	return pushes, true
}
