package model

type Coin string
type Network string

var (
	BCH Coin = "BCH"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)
