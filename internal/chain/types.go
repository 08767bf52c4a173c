package chain

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawTxFetcher supplies raw transactions from the node.
	RawTxFetcher interface {
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
)
