// Copyright (C) 2025 Aurum Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package valuation

import (
	"context"
	"errors"

	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
)

// ErrNoPriceSource signals no price source is wired at all.
var ErrNoPriceSource = errors.New("no price source available")

// ValueSource prices an asset amount directly in the common value unit.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/value_source_mock.go -package mocks code.aurumprotocol.io/aurum/core/valuation ValueSource
type ValueSource interface {
	Value(ctx context.Context, asset string, amount *num.Uint) (*num.Uint, error)
}

// PriceSource quotes base/quote asset pairs.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/price_source_mock.go -package mocks code.aurumprotocol.io/aurum/core/valuation PriceSource
type PriceSource interface {
	// Price returns the value of one whole unit of base in quote units.
	Price(ctx context.Context, base, quote string) (*num.Uint, error)
}

// DecimalSource reports the declared decimal precision of an asset.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/decimal_source_mock.go -package mocks code.aurumprotocol.io/aurum/core/valuation DecimalSource
type DecimalSource interface {
	Decimals(asset string) (uint8, error)
}

// Engine converts asset amounts into the common value unit through an
// ordered fallback chain: direct registry pricing, oracle quote scaled by
// asset precision, then 1:1 identity. It never fails, total source
// failure degrades to the identity fallback.
type Engine struct {
	log *logging.Logger
	Config

	registry ValueSource
	oracle   PriceSource
	decimals DecimalSource
}

// New instantiates a new valuation engine. registry and oracle may be nil,
// missing sources are simply skipped in the fallback chain.
func New(log *logging.Logger, config Config, registry ValueSource, oracle PriceSource, decimals DecimalSource) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		log:      log,
		Config:   config,
		registry: registry,
		oracle:   oracle,
		decimals: decimals,
	}
}

// ReloadConf updates the internal configuration of the valuation engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.Config = cfg
}

// ValueOf returns the value of amount of asset in the common unit.
// Read-only, never errors, total source failure degrades to the identity
// fallback.
func (e *Engine) ValueOf(ctx context.Context, asset string, amount *num.Uint) *num.Uint {
	v, err := e.StrictValueOf(ctx, asset, amount)
	if err == nil {
		return v
	}
	// identity fallback, a stale valuation beats a blocked engine
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("all price sources failed, using identity fallback",
			logging.AssetID(asset))
	}
	return amount.Clone()
}

// StrictValueOf is the fallback chain without the identity terminal:
// registry first, then oracle, an error when both fail. Eligibility
// checks use this so they can tell a real valuation from a degraded one.
func (e *Engine) StrictValueOf(ctx context.Context, asset string, amount *num.Uint) (*num.Uint, error) {
	var lastErr error
	if e.registry != nil {
		v, err := e.registry.Value(ctx, asset, amount)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if e.log.GetLevel() == logging.DebugLevel {
			e.log.Debug("registry valuation failed, trying oracle",
				logging.AssetID(asset),
				logging.Error(err))
		}
	}

	if e.oracle != nil {
		v, err := e.oracleValue(ctx, asset, amount)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = ErrNoPriceSource
	}
	return nil, lastErr
}

func (e *Engine) oracleValue(ctx context.Context, asset string, amount *num.Uint) (*num.Uint, error) {
	price, err := e.oracle.Price(ctx, asset, e.BaseUnit)
	if err != nil {
		if e.log.GetLevel() == logging.DebugLevel {
			e.log.Debug("oracle quote failed",
				logging.AssetID(asset),
				logging.Error(err))
		}
		return nil, err
	}

	dp := uint8(defaultDecimals)
	if d, err := e.decimals.Decimals(asset); err == nil {
		dp = d
	}

	// value = amount * price / 10^decimals
	scale := num.UintZero().Exp(num.NewUint(10), num.NewUint(uint64(dp)))
	v := num.UintZero().Mul(amount, price)
	return v.Div(v, scale), nil
}
