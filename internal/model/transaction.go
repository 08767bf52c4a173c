package model

// Transaction is a hydrated ledger transaction. It is immutable after
// hydration except for the Parent links filled in by the resolver.
type Transaction struct {
	TxID    string
	Inputs  []Input
	Outputs []Output
	// TokenOp is the token operation classified from output 0.
	// Kind is OpNone for transactions without outputs.
	TokenOp TokenOperation
}

// Input references an output of a parent transaction.
type Input struct {
	PrevTxID string
	PrevVout uint32
	// Parent is set by the resolver. The resolver owns the fetched copy;
	// several inputs spending the same parent share one instance.
	Parent *Transaction
}

// Output holds an output's script with its best-effort display address.
type Output struct {
	Value   uint64
	Script  []byte
	Address string
}

// UnknownAddress is used when an output script does not decode to an address.
const UnknownAddress = "unknown"
