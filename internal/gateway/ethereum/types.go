package ethereum

import (
	"time"

	"github.com/onrik/ethrpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EthClient is the subset of the ethrpc client used by the gateway.
	EthClient interface {
		EthGetBlockByNumber(number int, withTransactions bool) (*ethrpc.Block, error)
		EthGetTransactionReceipt(hash string) (*ethrpc.TransactionReceipt, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
