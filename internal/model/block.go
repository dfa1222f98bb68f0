// Package model defines domain models for EVM block analysis.
package model

import (
	"math/big"
	"time"
)

// BlockHeader carries the block fields needed without its transaction bodies.
type BlockHeader struct {
	Number     uint64
	Hash       string
	ParentHash string
	// Timestamp is in unix seconds.
	Timestamp uint64
	GasUsed   *big.Int
	GasLimit  *big.Int
	Miner     string
}

// Block is a header together with its ordered transactions.
type Block struct {
	BlockHeader
	Transactions []Transaction
}

// BlockRecord is a fetched block as persisted by the sink.
type BlockRecord struct {
	ID      string
	Created time.Time
	Block   Block
}
