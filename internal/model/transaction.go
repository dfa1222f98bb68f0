package model

import (
	"math/big"
	"time"
)

// ReceiptStatus is the execution outcome recorded in a receipt.
type ReceiptStatus string

var (
	ReceiptSuccess ReceiptStatus = "success"
	ReceiptFailure ReceiptStatus = "failure"
)

// Transaction is a single transaction as included in a block.
type Transaction struct {
	Hash  string
	Index uint32
	From  string
	// To is empty for contract creations.
	To       string
	Value    *big.Int
	Gas      uint64
	GasPrice *big.Int
	Nonce    uint64
	Input    string
}

// IsContractCreation reports whether the transaction has no recipient.
func (t Transaction) IsContractCreation() bool {
	return t.To == ""
}

// Receipt is the execution outcome of one transaction.
type Receipt struct {
	TransactionHash   string
	GasUsed           *big.Int
	CumulativeGasUsed *big.Int
	Status            ReceiptStatus
	ContractAddress   string
}

// TransactionRecord groups a transaction with its receipt for persistence.
type TransactionRecord struct {
	ID          string
	Created     time.Time
	BlockNumber uint64
	Transaction Transaction
	// Receipt is nil when the node returned none.
	Receipt *Receipt
}
