package ingester

import "time"

const (
	defaultReceiptWorkers = 1
	defaultBlockTimeout   = 2 * time.Minute
)
