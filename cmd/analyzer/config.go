package main

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/ingester"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/shopspring/decimal"
)

const etherDecimals = 18

func (c config) pipelineConfig() (ingester.Config, error) {
	thresholds, err := c.thresholds()
	if err != nil {
		return ingester.Config{}, err
	}
	return ingester.Config{
		Thresholds:     thresholds,
		ReceiptWorkers: c.ReceiptWorkers,
		BlockTimeout:   c.BlockTimeout,
	}, nil
}

func (c config) thresholds() (model.Thresholds, error) {
	thresholds := model.Thresholds{
		HighGasMultiplier:     c.HighGasMultiplier,
		FailedRatio:           c.FailedRatio,
		ContractCreationRatio: c.ContractCreationRatio,
	}

	if raw := strings.TrimSpace(c.HighValueETH); raw != "" {
		eth, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Thresholds{}, fmt.Errorf("parse high value %q: %w", raw, err)
		}
		if eth.IsNegative() {
			return model.Thresholds{}, fmt.Errorf("high value %s ETH must not be negative", raw)
		}
		thresholds.HighValueWei = eth.Shift(etherDecimals).BigInt()
	}

	if err := thresholds.Validate(); err != nil {
		return model.Thresholds{}, fmt.Errorf("invalid thresholds: %w", err)
	}
	return thresholds, nil
}
