package model

import (
	"errors"
	"fmt"
	"math/big"
)

// WeiPerEther is 10^18.
var WeiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Thresholds configures when a block or transaction is considered anomalous.
// All comparisons are strict: a value equal to the limit does not qualify.
type Thresholds struct {
	// HighValueWei disables high value detection when nil.
	HighValueWei          *big.Int
	HighGasMultiplier     float64
	FailedRatio           float64
	ContractCreationRatio float64
}

// DefaultThresholds returns 100 ETH, 2x average gas, 10% failed and 10% contract creations.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighValueWei:          new(big.Int).Mul(big.NewInt(100), WeiPerEther),
		HighGasMultiplier:     2,
		FailedRatio:           0.1,
		ContractCreationRatio: 0.1,
	}
}

// Validate checks that thresholds are within meaningful ranges.
func (t Thresholds) Validate() error {
	if t.HighValueWei != nil && t.HighValueWei.Sign() < 0 {
		return errors.New("high value threshold must not be negative")
	}
	if t.HighGasMultiplier < 0 {
		return fmt.Errorf("high gas multiplier %v must not be negative", t.HighGasMultiplier)
	}
	if t.FailedRatio < 0 || t.FailedRatio > 1 {
		return fmt.Errorf("failed ratio %v out of [0, 1]", t.FailedRatio)
	}
	if t.ContractCreationRatio < 0 || t.ContractCreationRatio > 1 {
		return fmt.Errorf("contract creation ratio %v out of [0, 1]", t.ContractCreationRatio)
	}
	return nil
}
