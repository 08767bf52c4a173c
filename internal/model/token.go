package model

import "math/big"

// OpKind tags the token operation carried by a transaction's first output.
type OpKind string

var (
	// OpNone marks scripts that carry no recognizable token payload.
	OpNone OpKind = "none"
	// OpMalformed marks scripts with a valid token prefix but a payload
	// that does not parse. Distinct from OpNone: callers must surface it.
	OpMalformed OpKind = "malformed"
	OpGenesis   OpKind = "genesis"
	OpMint      OpKind = "mint"
	OpSend      OpKind = "send"
)

// TokenOperation is the classified token payload of an output script.
// Exactly one of Genesis, Mint, Send is non-nil for the matching kind.
type TokenOperation struct {
	Kind      OpKind
	TokenType uint16
	// TokenID is the hex token identifier. Empty for genesis operations,
	// whose token id is the genesis transaction's own txid.
	TokenID string
	Genesis *GenesisOp
	Mint    *MintOp
	Send    *SendOp
}

// GenesisOp creates a token and its initial supply.
// Display fields are hex-encoded as found on the wire.
type GenesisOp struct {
	TickerHex       string
	NameHex         string
	DocumentURIHex  string
	DocumentHashHex string
	Decimals        uint8
	// MintBatonVout is the output index carrying the mint baton, 0 for none.
	MintBatonVout uint32
	InitialQty    *big.Int
}

// MintOp issues additional supply using a mint baton input.
type MintOp struct {
	MintBatonVout uint32
	Qty           *big.Int
}

// SendOp transfers supply. Amounts[i] is carried by output i+1.
type SendOp struct {
	Amounts []*big.Int
}

// TokenContext is the token-relevant view of a single spent output: which
// token it moves, how much, and whether it is a mint baton.
type TokenContext struct {
	TokenType   uint16
	TokenID     string
	Value       *big.Int
	IsMintBaton bool
}
