package mongo

import (
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/pkg/safe"
)

// Big integers are stored as base 10 strings; an empty string stands for nil.

type alertDocument struct {
	ID          string    `bson:"_id"`
	Created     time.Time `bson:"created"`
	BlockNumber int64     `bson:"blockNumber"`
	BlockHash   string    `bson:"blockHash"`
	Kind        string    `bson:"kind"`
	TxHash      string    `bson:"txHash,omitempty"`
	Message     string    `bson:"alertMsg"`
}

type receiptDocument struct {
	GasUsed           string `bson:"gasUsed"`
	CumulativeGasUsed string `bson:"cumulativeGasUsed"`
	Status            string `bson:"status"`
	ContractAddress   string `bson:"contractAddress,omitempty"`
}

type transactionDocument struct {
	ID          string           `bson:"_id"`
	Created     time.Time        `bson:"created"`
	BlockNumber int64            `bson:"blockNumber"`
	Hash        string           `bson:"hash"`
	Index       int64            `bson:"transactionIndex"`
	From        string           `bson:"from"`
	To          string           `bson:"to,omitempty"`
	Value       string           `bson:"value"`
	Gas         int64            `bson:"gas"`
	GasPrice    string           `bson:"gasPrice"`
	Nonce       int64            `bson:"nonce"`
	Input       string           `bson:"input"`
	Receipt     *receiptDocument `bson:"receipt,omitempty"`
}

type blockDocument struct {
	ID               string    `bson:"_id"`
	Created          time.Time `bson:"created"`
	Number           int64     `bson:"number"`
	Hash             string    `bson:"hash"`
	ParentHash       string    `bson:"parentHash"`
	Timestamp        int64     `bson:"timestamp"`
	GasUsed          string    `bson:"gasUsed"`
	GasLimit         string    `bson:"gasLimit"`
	Miner            string    `bson:"miner"`
	TransactionCount int64     `bson:"transactionCount"`
}

type blockAnalysisDocument struct {
	ID                        string    `bson:"_id"`
	Created                   time.Time `bson:"created"`
	BlockNumber               int64     `bson:"blockNumber"`
	BlockHash                 string    `bson:"blockHash"`
	BlockTimestamp            int64     `bson:"blockTimestamp"`
	TransactionCount          int64     `bson:"transactionCount"`
	HighGasUsageCount         int64     `bson:"transactionsWithHighGasUsageCount"`
	FailedCount               int64     `bson:"failedTransactionsCount"`
	ContractCreationCount     int64     `bson:"contractCreationCount"`
	HighValueCount            int64     `bson:"highValueTransactions"`
	AverageGasUsed            string    `bson:"averageGasUsed"`
	AverageGasPriceVolatility string    `bson:"averageGasPriceVolatility"`
	FailedRatio               float64   `bson:"failedRatio"`
	ContractCreationRatio     float64   `bson:"contractCreationRatio"`
	TransactionsPerSecond     *float64  `bson:"transactionsPerSecond"`
	MiningTimeSeconds         *int64    `bson:"blockMiningTime"`
}

func alertToDocument(a model.Alert) (alertDocument, error) {
	number, err := safe.Int64(a.BlockNumber)
	if err != nil {
		return alertDocument{}, fmt.Errorf("alert %s block number: %w", a.ID, err)
	}
	return alertDocument{
		ID:          a.ID,
		Created:     a.Created,
		BlockNumber: number,
		BlockHash:   a.BlockHash,
		Kind:        string(a.Kind),
		TxHash:      a.TxHash,
		Message:     a.Message,
	}, nil
}

func alertFromDocument(d alertDocument) (model.Alert, error) {
	number, err := safe.Uint64(d.BlockNumber)
	if err != nil {
		return model.Alert{}, fmt.Errorf("alert %s block number: %w", d.ID, err)
	}
	return model.Alert{
		ID:          d.ID,
		Created:     d.Created,
		BlockNumber: number,
		BlockHash:   d.BlockHash,
		Kind:        model.AlertKind(d.Kind),
		TxHash:      d.TxHash,
		Message:     d.Message,
	}, nil
}

func transactionToDocument(t model.TransactionRecord) (transactionDocument, error) {
	number, err := safe.Int64(t.BlockNumber)
	if err != nil {
		return transactionDocument{}, fmt.Errorf("tx %s block number: %w", t.Transaction.Hash, err)
	}
	gas, err := safe.Int64(t.Transaction.Gas)
	if err != nil {
		return transactionDocument{}, fmt.Errorf("tx %s gas: %w", t.Transaction.Hash, err)
	}
	nonce, err := safe.Int64(t.Transaction.Nonce)
	if err != nil {
		return transactionDocument{}, fmt.Errorf("tx %s nonce: %w", t.Transaction.Hash, err)
	}

	doc := transactionDocument{
		ID:          t.ID,
		Created:     t.Created,
		BlockNumber: number,
		Hash:        t.Transaction.Hash,
		Index:       int64(t.Transaction.Index),
		From:        t.Transaction.From,
		To:          t.Transaction.To,
		Value:       bigString(t.Transaction.Value),
		Gas:         gas,
		GasPrice:    bigString(t.Transaction.GasPrice),
		Nonce:       nonce,
		Input:       t.Transaction.Input,
	}
	if t.Receipt != nil {
		doc.Receipt = &receiptDocument{
			GasUsed:           bigString(t.Receipt.GasUsed),
			CumulativeGasUsed: bigString(t.Receipt.CumulativeGasUsed),
			Status:            string(t.Receipt.Status),
			ContractAddress:   t.Receipt.ContractAddress,
		}
	}
	return doc, nil
}

func blockToDocument(b model.BlockRecord) (blockDocument, error) {
	number, err := safe.Int64(b.Block.Number)
	if err != nil {
		return blockDocument{}, fmt.Errorf("block number: %w", err)
	}
	timestamp, err := safe.Int64(b.Block.Timestamp)
	if err != nil {
		return blockDocument{}, fmt.Errorf("block %d timestamp: %w", b.Block.Number, err)
	}
	return blockDocument{
		ID:               b.ID,
		Created:          b.Created,
		Number:           number,
		Hash:             b.Block.Hash,
		ParentHash:       b.Block.ParentHash,
		Timestamp:        timestamp,
		GasUsed:          bigString(b.Block.GasUsed),
		GasLimit:         bigString(b.Block.GasLimit),
		Miner:            b.Block.Miner,
		TransactionCount: int64(len(b.Block.Transactions)),
	}, nil
}

func analysisToDocument(m model.BlockMetrics) (blockAnalysisDocument, error) {
	number, err := safe.Int64(m.BlockNumber)
	if err != nil {
		return blockAnalysisDocument{}, fmt.Errorf("analysis block number: %w", err)
	}
	timestamp, err := safe.Int64(m.BlockTimestamp)
	if err != nil {
		return blockAnalysisDocument{}, fmt.Errorf("analysis block %d timestamp: %w", m.BlockNumber, err)
	}

	doc := blockAnalysisDocument{
		ID:                        m.ID,
		Created:                   m.Created,
		BlockNumber:               number,
		BlockHash:                 m.BlockHash,
		BlockTimestamp:            timestamp,
		TransactionCount:          int64(m.TransactionCount),
		HighGasUsageCount:         int64(m.HighGasUsageCount),
		FailedCount:               int64(m.FailedCount),
		ContractCreationCount:     int64(m.ContractCreationCount),
		HighValueCount:            int64(m.HighValueCount),
		AverageGasUsed:            bigString(m.AverageGasUsed),
		AverageGasPriceVolatility: bigString(m.AverageGasPriceVolatility),
		FailedRatio:               m.FailedRatio,
		ContractCreationRatio:     m.ContractCreationRatio,
		TransactionsPerSecond:     m.TransactionsPerSecond,
	}
	if m.MiningTimeSeconds != nil {
		miningTime, err := safe.Int64(*m.MiningTimeSeconds)
		if err != nil {
			return blockAnalysisDocument{}, fmt.Errorf("analysis block %d mining time: %w", m.BlockNumber, err)
		}
		doc.MiningTimeSeconds = &miningTime
	}
	return doc, nil
}

func analysisFromDocument(d blockAnalysisDocument) (model.BlockMetrics, error) {
	var (
		m   model.BlockMetrics
		err error
	)
	m.ID = d.ID
	m.Created = d.Created
	m.BlockHash = d.BlockHash
	m.FailedRatio = d.FailedRatio
	m.ContractCreationRatio = d.ContractCreationRatio
	m.TransactionsPerSecond = d.TransactionsPerSecond

	if m.BlockNumber, err = safe.Uint64(d.BlockNumber); err != nil {
		return model.BlockMetrics{}, fmt.Errorf("analysis %s block number: %w", d.ID, err)
	}
	if m.BlockTimestamp, err = safe.Uint64(d.BlockTimestamp); err != nil {
		return model.BlockMetrics{}, fmt.Errorf("analysis %s timestamp: %w", d.ID, err)
	}
	counts := []struct {
		src int64
		dst *uint32
	}{
		{d.TransactionCount, &m.TransactionCount},
		{d.HighGasUsageCount, &m.HighGasUsageCount},
		{d.FailedCount, &m.FailedCount},
		{d.ContractCreationCount, &m.ContractCreationCount},
		{d.HighValueCount, &m.HighValueCount},
	}
	for _, c := range counts {
		if *c.dst, err = safe.Uint32(c.src); err != nil {
			return model.BlockMetrics{}, fmt.Errorf("analysis %s count: %w", d.ID, err)
		}
	}
	if m.AverageGasUsed, err = parseBig(d.AverageGasUsed); err != nil {
		return model.BlockMetrics{}, fmt.Errorf("analysis %s average gas used: %w", d.ID, err)
	}
	if m.AverageGasPriceVolatility, err = parseBig(d.AverageGasPriceVolatility); err != nil {
		return model.BlockMetrics{}, fmt.Errorf("analysis %s gas price volatility: %w", d.ID, err)
	}
	if d.MiningTimeSeconds != nil {
		miningTime, err := safe.Uint64(*d.MiningTimeSeconds)
		if err != nil {
			return model.BlockMetrics{}, fmt.Errorf("analysis %s mining time: %w", d.ID, err)
		}
		m.MiningTimeSeconds = &miningTime
	}
	return m, nil
}

func bigString(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
