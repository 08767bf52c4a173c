// Package chain decodes ledger transactions and talks to the node RPC.
package chain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/burnsentry/burnsentry-backend/internal/slp"
	"github.com/burnsentry/burnsentry-backend/pkg/safe"
)

// Hydrator decodes raw transactions into model form and classifies the
// token operation on output 0.
type Hydrator struct {
	fetcher RawTxFetcher
	params  *chaincfg.Params
}

// NewHydrator constructs a Hydrator for the given network. The fetcher may
// be nil when only HydrateRaw is needed.
func NewHydrator(fetcher RawTxFetcher, network model.Network) (*Hydrator, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Hydrator{fetcher: fetcher, params: params}, nil
}

// HydrateRaw decodes a serialized transaction.
func (h *Hydrator) HydrateRaw(raw []byte) (*model.Transaction, error) {
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return h.fromMsgTx(&msgTx)
}

// HydrateTxID fetches a transaction from the node by txid and decodes it.
func (h *Hydrator) HydrateTxID(ctx context.Context, txid string) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{TxID: txid, Err: err}
	}

	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, &FetchError{TxID: txid, Err: fmt.Errorf("parse txid: %w", err)}
	}

	tx, err := h.fetcher.GetRawTransaction(hash)
	if err != nil {
		if isNoTxInfo(err) {
			return nil, &FetchError{TxID: txid, Err: ErrTxNotFound}
		}
		return nil, &FetchError{TxID: txid, Err: err}
	}

	return h.fromMsgTx(tx.MsgTx())
}

func (h *Hydrator) fromMsgTx(msgTx *wire.MsgTx) (*model.Transaction, error) {
	if _, err := safe.Uint32(len(msgTx.TxOut)); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("output count: %w", err)}
	}

	tx := &model.Transaction{
		TxID:    msgTx.TxHash().String(),
		Inputs:  make([]model.Input, 0, len(msgTx.TxIn)),
		Outputs: make([]model.Output, 0, len(msgTx.TxOut)),
		TokenOp: model.TokenOperation{Kind: model.OpNone},
	}

	for _, txIn := range msgTx.TxIn {
		tx.Inputs = append(tx.Inputs, model.Input{
			PrevTxID: txIn.PreviousOutPoint.Hash.String(),
			PrevVout: txIn.PreviousOutPoint.Index,
		})
	}

	for _, txOut := range msgTx.TxOut {
		value, err := safe.Uint64(txOut.Value)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("output value: %w", err)}
		}
		script := append([]byte(nil), txOut.PkScript...)
		tx.Outputs = append(tx.Outputs, model.Output{
			Value:   value,
			Script:  script,
			Address: h.displayAddress(script),
		})
	}

	if len(tx.Outputs) > 0 {
		tx.TokenOp = slp.Classify(tx.Outputs[0].Script)
	}

	return tx, nil
}

// displayAddress is best effort: scripts that do not decode to a single
// address render as the unknown placeholder rather than failing hydration.
func (h *Hydrator) displayAddress(script []byte) string {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, h.params)
	if err != nil || len(addrs) == 0 {
		return model.UnknownAddress
	}
	return addrs[0].EncodeAddress()
}

func isNoTxInfo(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCNoTxInfo
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
