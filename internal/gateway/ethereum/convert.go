// Package ethereum implements the ledger gateway for EVM nodes.
package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/pkg/safe"
	"github.com/onrik/ethrpc"
)

// ConvertHeader maps the header fields of an ethrpc block.
func ConvertHeader(src *ethrpc.Block) (model.BlockHeader, error) {
	number, err := safe.Uint64(src.Number)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block number: %w", err)
	}
	timestamp, err := safe.Uint64(src.Timestamp)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block %d timestamp: %w", src.Number, err)
	}
	gasUsed, err := safe.Int64(src.GasUsed)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block %d gas used: %w", src.Number, err)
	}
	gasLimit, err := safe.Int64(src.GasLimit)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block %d gas limit: %w", src.Number, err)
	}

	return model.BlockHeader{
		Number:     number,
		Hash:       src.Hash,
		ParentHash: src.ParentHash,
		Timestamp:  timestamp,
		GasUsed:    big.NewInt(gasUsed),
		GasLimit:   big.NewInt(gasLimit),
		Miner:      src.Miner,
	}, nil
}

// ConvertBlock maps an ethrpc block fetched with full transactions.
func ConvertBlock(src *ethrpc.Block) (*model.Block, error) {
	header, err := ConvertHeader(src)
	if err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(src.Transactions))
	for i := range src.Transactions {
		tx, err := ConvertTransaction(&src.Transactions[i], i)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", header.Number, err)
		}
		txs = append(txs, tx)
	}

	return &model.Block{BlockHeader: header, Transactions: txs}, nil
}

// ConvertTransaction maps an ethrpc transaction; position is used when the node omits the index.
func ConvertTransaction(src *ethrpc.Transaction, position int) (model.Transaction, error) {
	index := position
	if src.TransactionIndex != nil {
		index = *src.TransactionIndex
	}
	idx, err := safe.Uint32(index)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s index: %w", src.Hash, err)
	}
	gas, err := safe.Uint64(src.Gas)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s gas: %w", src.Hash, err)
	}
	nonce, err := safe.Uint64(src.Nonce)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s nonce: %w", src.Hash, err)
	}

	return model.Transaction{
		Hash:     src.Hash,
		Index:    idx,
		From:     src.From,
		To:       src.To,
		Value:    new(big.Int).Set(&src.Value),
		Gas:      gas,
		GasPrice: new(big.Int).Set(&src.GasPrice),
		Nonce:    nonce,
		Input:    src.Input,
	}, nil
}

// ConvertReceipt maps an ethrpc receipt.
func ConvertReceipt(src *ethrpc.TransactionReceipt) (*model.Receipt, error) {
	status, err := ParseStatus(src.Status)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", src.TransactionHash, err)
	}
	gasUsed, err := safe.Int64(src.GasUsed)
	if err != nil {
		return nil, fmt.Errorf("receipt %s gas used: %w", src.TransactionHash, err)
	}
	cumulative, err := safe.Int64(src.CumulativeGasUsed)
	if err != nil {
		return nil, fmt.Errorf("receipt %s cumulative gas used: %w", src.TransactionHash, err)
	}

	return &model.Receipt{
		TransactionHash:   src.TransactionHash,
		GasUsed:           big.NewInt(gasUsed),
		CumulativeGasUsed: big.NewInt(cumulative),
		Status:            status,
		ContractAddress:   src.ContractAddress,
	}, nil
}

// ParseStatus maps the receipt status quantity. Receipts from before Byzantium
// carry no status and are treated as successful.
func ParseStatus(raw string) (model.ReceiptStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0x1", "1", "":
		return model.ReceiptSuccess, nil
	case "0x0", "0":
		return model.ReceiptFailure, nil
	default:
		return "", fmt.Errorf("unknown receipt status %q", raw)
	}
}
