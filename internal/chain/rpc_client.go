package chain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps the node rpcclient with metrics instrumentation.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client.
func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetRawTransaction returns the transaction for a txid.
func (r *ObservedClient) GetRawTransaction(txHash *chainhash.Hash) (tx *btcutil.Tx, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	return r.client.GetRawTransaction(txHash)
}

// SendRawTransaction broadcasts a transaction to the network.
func (r *ObservedClient) SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	return r.client.SendRawTransaction(tx, allowHighFees)
}
