package ingester

import "fmt"

// GatewayFetchError reports a failed ledger read while processing a block.
type GatewayFetchError struct {
	Op          string
	BlockNumber uint64
	Err         error
}

func (e *GatewayFetchError) Error() string {
	return fmt.Sprintf("%s for block %d: %v", e.Op, e.BlockNumber, e.Err)
}

func (e *GatewayFetchError) Unwrap() error {
	return e.Err
}

// StoreWriteError reports a failed sink write while processing a block.
type StoreWriteError struct {
	Op          string
	BlockNumber uint64
	Err         error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("%s for block %d: %v", e.Op, e.BlockNumber, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
