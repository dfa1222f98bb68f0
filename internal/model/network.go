package model

// Network names the chain an analyzer instance follows. It is used as the
// network label on metrics; an empty value is reported as "unknown".
type Network string

// Known network labels. Any other value is passed through unchanged.
const (
	// Mainnet is the default for cmd/analyzer.
	Mainnet Network = "mainnet"
	Sepolia Network = "sepolia"
)
