package chain

import (
	"errors"
	"fmt"
)

// ErrTxNotFound reports that the node has no record of the requested txid.
var ErrTxNotFound = errors.New("transaction not found")

// DecodeError reports a byte sequence that is not a well-formed transaction.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode transaction: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FetchError reports a failure to obtain a transaction from the node.
type FetchError struct {
	TxID string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch transaction %s: %v", e.TxID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
