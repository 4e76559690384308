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

package risk

import (
	"context"
	"sync"
	"time"

	"code.aurumprotocol.io/aurum/core/interest"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
)

// PositionSource supplies position snapshots, implemented by the ledger.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/position_source_mock.go -package mocks code.aurumprotocol.io/aurum/core/risk PositionSource
type PositionSource interface {
	GetPosition(id uint64) (*types.Position, error)
}

// Valuation converts asset amounts into the common value unit. ValueOf
// always produces a value, StrictValueOf refuses to degrade to the
// identity fallback.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/valuation_mock.go -package mocks code.aurumprotocol.io/aurum/core/risk Valuation
type Valuation interface {
	ValueOf(ctx context.Context, asset string, amount *num.Uint) *num.Uint
	StrictValueOf(ctx context.Context, asset string, amount *num.Uint) (*num.Uint, error)
}

// Parameters supplies the configured per-asset liquidation ratio.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/parameters_mock.go -package mocks code.aurumprotocol.io/aurum/core/risk Parameters
type Parameters interface {
	LiquidationRatio(asset string) uint64
}

// Overrides supplies the emergency-elevated effective liquidation ratio.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/overrides_mock.go -package mocks code.aurumprotocol.io/aurum/core/risk Overrides
type Overrides interface {
	EffectiveLiquidationRatio(asset string, configuredPPM uint64) uint64
}

// TimeService supplies the engine time.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks code.aurumprotocol.io/aurum/core/risk TimeService
type TimeService interface {
	GetTimeNow() time.Time
}

// Engine derives collateralization ratio, health factor and the six-tier
// risk classification from ledger and valuation outputs. All outputs are
// ephemeral, recomputed on every query and never cached, price and debt
// both change continuously.
type Engine struct {
	log *logging.Logger
	Config

	cfgMu sync.RWMutex

	positions PositionSource
	valuation Valuation
	params    Parameters
	overrides Overrides
	tsvc      TimeService
}

// New instantiates a new risk classifier.
func New(log *logging.Logger, config Config, positions PositionSource, valuation Valuation, params Parameters, overrides Overrides, tsvc TimeService) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		log:       log,
		Config:    config,
		positions: positions,
		valuation: valuation,
		params:    params,
		overrides: overrides,
		tsvc:      tsvc,
	}
}

// ReloadConf updates the internal configuration of the risk classifier.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.cfgMu.Lock()
	e.Config = cfg
	e.cfgMu.Unlock()
}

// Snapshot computes the full risk snapshot for a position.
func (e *Engine) Snapshot(ctx context.Context, id uint64) (*types.RiskSnapshot, error) {
	pos, err := e.positions.GetPosition(id)
	if err != nil {
		return nil, err
	}

	now := e.tsvc.GetTimeNow()
	debt := interest.TotalDebt(pos, now)
	collateralValue := e.valuation.ValueOf(ctx, pos.CollateralAsset, pos.Collateral)
	debtValue := e.valuation.ValueOf(ctx, pos.DebtAsset, debt)

	liqRatio := e.overrides.EffectiveLiquidationRatio(
		pos.CollateralAsset, e.params.LiquidationRatio(pos.CollateralAsset))

	ratio := collateralizationRatio(collateralValue, debtValue)
	return &types.RiskSnapshot{
		PositionID:        id,
		Ratio:             ratio,
		HealthFactor:      healthFactor(ratio, liqRatio),
		Tier:              e.tier(ratio),
		LiquidationPrice:  liquidationPrice(debtValue, liqRatio, pos.Collateral),
		PriceDropPPM:      priceDrop(collateralValue, debtValue, liqRatio),
		TimeToLiquidation: e.timeToLiquidation(pos, collateralValue, debtValue, liqRatio),
	}, nil
}

// CollateralizationRatio returns the position's current ratio at
// RatioScale, MaxUint when the position carries no debt value.
func (e *Engine) CollateralizationRatio(ctx context.Context, id uint64) (*num.Uint, error) {
	pos, err := e.positions.GetPosition(id)
	if err != nil {
		return nil, err
	}
	now := e.tsvc.GetTimeNow()
	debt := interest.TotalDebt(pos, now)
	collateralValue := e.valuation.ValueOf(ctx, pos.CollateralAsset, pos.Collateral)
	debtValue := e.valuation.ValueOf(ctx, pos.DebtAsset, debt)
	return collateralizationRatio(collateralValue, debtValue), nil
}

// RatioFor computes the collateralization ratio for a position snapshot
// using strict valuation, it fails rather than degrade when no real
// price is available. Liquidation eligibility runs on this, the regimes
// decide what a failure means.
func (e *Engine) RatioFor(ctx context.Context, pos *types.Position) (*num.Uint, error) {
	now := e.tsvc.GetTimeNow()
	debt := interest.TotalDebt(pos, now)

	collateralValue, err := e.valuation.StrictValueOf(ctx, pos.CollateralAsset, pos.Collateral)
	if err != nil {
		return nil, err
	}
	debtValue, err := e.valuation.StrictValueOf(ctx, pos.DebtAsset, debt)
	if err != nil {
		return nil, err
	}
	return collateralizationRatio(collateralValue, debtValue), nil
}

// IsPositionAtRisk reports whether a position sits in the extreme or
// danger-zone tiers, along with its tier. Unknown positions degrade to
// (false, danger-zone) rather than erroring, dashboards stay renderable
// under partial data.
func (e *Engine) IsPositionAtRisk(ctx context.Context, id uint64) (bool, types.RiskTier) {
	snap, err := e.Snapshot(ctx, id)
	if err != nil {
		return false, types.TierDangerZone
	}
	return snap.Tier >= types.TierExtreme, snap.Tier
}

func (e *Engine) tier(ratio *num.Uint) types.RiskTier {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	switch {
	case ratio.GTE(num.NewUint(e.UltraSafeThresholdPPM)):
		return types.TierUltraSafe
	case ratio.GTE(num.NewUint(e.HealthyThresholdPPM)):
		return types.TierHealthy
	case ratio.GTE(num.NewUint(e.ModerateThresholdPPM)):
		return types.TierModerate
	case ratio.GTE(num.NewUint(e.AggressiveThresholdPPM)):
		return types.TierAggressive
	case ratio.GTE(num.NewUint(e.ExtremeThresholdPPM)):
		return types.TierExtreme
	default:
		return types.TierDangerZone
	}
}

// timeToLiquidation estimates when debt growth from interest alone
// reaches the liquidation threshold, collateral amount and prices held
// constant. Advisory only.
func (e *Engine) timeToLiquidation(pos *types.Position, collateralValue, debtValue *num.Uint, liqRatioPPM uint64) time.Duration {
	if debtValue.IsZero() || liqRatioPPM == 0 {
		return types.MaxTimeToLiquidation
	}

	// target debt value at which ratio == liqRatio
	target := num.UintZero().Mul(collateralValue, num.NewUint(types.RatioScale))
	target.Div(target, num.NewUint(liqRatioPPM))
	if debtValue.GTE(target) {
		return 0
	}
	if pos.RatePPM == 0 {
		return types.MaxTimeToLiquidation
	}

	// growth per second, simple interest on the current debt value
	growth := debtValue.ToDecimal().
		Mul(num.DecimalFromInt64(int64(pos.RatePPM))).
		Div(num.DecimalFromInt64(int64(interest.SecondsPerYear))).
		Div(num.DecimalFromInt64(int64(types.RatioScale)))
	if growth.IsZero() {
		return types.MaxTimeToLiquidation
	}

	gap := target.ToDecimal().Sub(debtValue.ToDecimal())
	seconds := gap.Div(growth)
	max := num.DecimalFromInt64(int64(types.MaxTimeToLiquidation / time.Second))
	if seconds.GreaterThanOrEqual(max) {
		return types.MaxTimeToLiquidation
	}
	return time.Duration(seconds.IntPart()) * time.Second
}

func collateralizationRatio(collateralValue, debtValue *num.Uint) *num.Uint {
	if debtValue.IsZero() {
		return num.MaxUint()
	}
	ratio := num.UintZero().Mul(collateralValue, num.NewUint(types.RatioScale))
	return ratio.Div(ratio, debtValue)
}

func healthFactor(ratio *num.Uint, liqRatioPPM uint64) *num.Uint {
	if liqRatioPPM == 0 {
		return num.MaxUint()
	}
	if ratio.EQ(num.MaxUint()) {
		return num.MaxUint()
	}
	hf := num.UintZero().Mul(ratio, num.NewUint(types.RatioScale))
	return hf.Div(hf, num.NewUint(liqRatioPPM))
}

// liquidationPrice back-solves the collateral price per smallest unit at
// which the position reaches the liquidation threshold.
func liquidationPrice(debtValue *num.Uint, liqRatioPPM uint64, collateralAmount *num.Uint) *num.Uint {
	if collateralAmount.IsZero() {
		return num.UintZero()
	}
	p := num.UintZero().Mul(debtValue, num.NewUint(liqRatioPPM))
	p.Div(p, num.NewUint(types.RatioScale))
	return p.Div(p, collateralAmount)
}

// priceDrop is the relative collateral price drop, at RatioScale, that
// brings the position to the liquidation threshold.
func priceDrop(collateralValue, debtValue *num.Uint, liqRatioPPM uint64) *num.Uint {
	if collateralValue.IsZero() || debtValue.IsZero() {
		return num.UintZero()
	}
	// threshold collateral value
	threshold := num.UintZero().Mul(debtValue, num.NewUint(liqRatioPPM))
	threshold.Div(threshold, num.NewUint(types.RatioScale))
	if threshold.GTE(collateralValue) {
		return num.UintZero()
	}
	drop := num.UintZero().Sub(collateralValue, threshold)
	drop.Mul(drop, num.NewUint(types.RatioScale))
	return drop.Div(drop, collateralValue)
}
