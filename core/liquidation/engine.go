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

package liquidation

import (
	"context"
	"sync"

	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/events"
	"code.aurumprotocol.io/aurum/core/ledger"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
	"code.aurumprotocol.io/aurum/metrics"
)

// Ledger is the position ledger surface used by the liquidation engine.
// The engine never mutates positions itself, all state changes go through
// the settlement callback.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ledger_mock.go -package mocks code.aurumprotocol.io/aurum/core/liquidation Ledger
type Ledger interface {
	SettleLiquidation(ctx context.Context, id uint64, settle ledger.SettleFunc) (*types.LiquidationResult, error)
	GetPosition(id uint64) (*types.Position, error)
}

// RatioSource computes the strict collateralization ratio of a position
// snapshot, failing when no real price is available.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ratio_source_mock.go -package mocks code.aurumprotocol.io/aurum/core/liquidation RatioSource
type RatioSource interface {
	RatioFor(ctx context.Context, pos *types.Position) (*num.Uint, error)
}

// Valuation converts asset amounts into the common value unit without
// degrading to the identity fallback.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/valuation_mock.go -package mocks code.aurumprotocol.io/aurum/core/liquidation Valuation
type Valuation interface {
	StrictValueOf(ctx context.Context, asset string, amount *num.Uint) (*num.Uint, error)
}

// Emergency exposes the per-asset emergency declarations.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/emergency_mock.go -package mocks code.aurumprotocol.io/aurum/core/liquidation Emergency
type Emergency interface {
	IsInEmergency(asset string) (bool, uint64)
	EffectiveLiquidationRatio(asset string, configuredPPM uint64) uint64
}

// HandlerRegistry resolves asset handlers and configured liquidation
// ratios.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/handler_registry_mock.go -package mocks code.aurumprotocol.io/aurum/core/liquidation HandlerRegistry
type HandlerRegistry interface {
	Handler(asset string) (assets.AssetHandler, bool)
	PooledHandler(asset string) (assets.PooledHandler, bool)
	LiquidationRatio(asset string) uint64
}

// Broker send events.
type Broker interface {
	Send(e events.Event)
}

// Engine decides liquidation eligibility and drives liquidation
// execution. Two funding paths exist: a liquidator repaying the debt from
// their own account, and the asset vault advancing the funds for
// authorized automation.
type Engine struct {
	log *logging.Logger
	Config

	ledger    Ledger
	ratios    RatioSource
	valuation Valuation
	emergency Emergency
	registry  HandlerRegistry
	broker    Broker

	admin string

	mu       sync.RWMutex
	bonusPPM uint64

	autoMu     sync.RWMutex
	automation map[string]struct{}
}

func New(
	log *logging.Logger,
	config Config,
	ldg Ledger,
	ratios RatioSource,
	valuation Valuation,
	emergency Emergency,
	registry HandlerRegistry,
	broker Broker,
	admin string,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		log:        log,
		Config:     config,
		ledger:     ldg,
		ratios:     ratios,
		valuation:  valuation,
		emergency:  emergency,
		registry:   registry,
		broker:     broker,
		admin:      admin,
		bonusPPM:   config.BonusPPM,
		automation: map[string]struct{}{},
	}
}

// ReloadConf updates the internal configuration. The running bonus is an
// admin-set parameter and survives a reload.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.mu.Lock()
	e.Config = cfg
	e.mu.Unlock()
}

// SetLiquidationBonus moves the liquidator bonus, administrator only and
// bounded by MaxBonusPPM.
func (e *Engine) SetLiquidationBonus(caller string, bonusPPM uint64) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if bonusPPM > e.Config.MaxBonusPPM {
		return types.ErrBonusTooHigh
	}
	e.log.Info("liquidation bonus updated",
		logging.Uint64("old-ppm", e.bonusPPM),
		logging.Uint64("new-ppm", bonusPPM))
	e.bonusPPM = bonusPPM
	return nil
}

// EnableAutomation authorizes an account to trigger vault-funded
// liquidation, administrator only.
func (e *Engine) EnableAutomation(caller, account string) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.autoMu.Lock()
	defer e.autoMu.Unlock()
	e.automation[account] = struct{}{}
	e.log.Info("automation enabled", logging.PartyID(account))
	return nil
}

// DisableAutomation revokes an automation authorization.
func (e *Engine) DisableAutomation(caller, account string) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.autoMu.Lock()
	defer e.autoMu.Unlock()
	delete(e.automation, account)
	e.log.Info("automation disabled", logging.PartyID(account))
	return nil
}

// CheckEligibility reports whether a position can be liquidated right
// now. Pure query, uses the same regime rules as execution but holds no
// position lock across it, so the answer can be stale by the time a
// liquidation lands.
func (e *Engine) CheckEligibility(ctx context.Context, id uint64) error {
	pos, err := e.ledger.GetPosition(id)
	if err != nil {
		return err
	}
	if !pos.Active {
		return types.ErrPositionInactive
	}
	_, err = e.eligible(ctx, pos)
	return err
}

// Liquidate closes an undercollateralized position, the liquidator repays
// the full outstanding debt from their own account and receives
// collateral worth the debt plus the bonus, capped at the position's
// collateral.
func (e *Engine) Liquidate(ctx context.Context, liquidator string, id uint64) (*types.LiquidationResult, error) {
	defer metrics.StartEngineOp(namedLogger, "liquidate")()

	res, err := e.ledger.SettleLiquidation(ctx, id, func(pos *types.Position, totalDebt *num.Uint) (*ledger.Settlement, error) {
		inEmergency, err := e.eligible(ctx, pos)
		if err != nil {
			return nil, err
		}

		share, err := e.collateralShare(ctx, pos, totalDebt, inEmergency)
		if err != nil {
			return nil, err
		}

		debtHandler, ok := e.registry.Handler(pos.DebtAsset)
		if !ok {
			return nil, types.ErrUnsupportedAsset
		}
		if err := debtHandler.Repay(ctx, pos.DebtAsset, totalDebt, liquidator); err != nil {
			return nil, err
		}
		return &ledger.Settlement{
			CollateralShare: share,
			Recipient:       liquidator,
			DebtRepaid:      totalDebt.Clone(),
			Unwind: func() error {
				return debtHandler.Lend(ctx, pos.DebtAsset, totalDebt, liquidator)
			},
		}, nil
	})
	if err != nil {
		metrics.LiquidationInc("direct", "rejected")
		return nil, err
	}

	metrics.LiquidationInc("direct", "liquidated")
	e.broker.Send(events.NewLiquidationEvent(ctx, res))
	e.log.Info("position liquidated",
		logging.PositionID(id),
		logging.PartyID(liquidator),
		logging.String("debt-repaid", res.DebtRepaid.String()),
		logging.String("collateral-liquidated", res.CollateralLiquidated.String()))
	return res, nil
}

// VaultLiquidate closes an undercollateralized position with the debt
// asset's vault advancing the repayment, the collateral share goes to the
// vault account. Only authorized automation may call it. A vault that
// cannot fund the advance is not an error, the attempt reports
// Succeeded=false and the position is untouched.
func (e *Engine) VaultLiquidate(ctx context.Context, caller string, id uint64) (*types.LiquidationResult, error) {
	defer metrics.StartEngineOp(namedLogger, "vault-liquidate")()

	if !e.isAutomation(caller) {
		metrics.LiquidationInc("vault", "rejected")
		return nil, types.ErrUnauthorizedAutomation
	}

	res, err := e.ledger.SettleLiquidation(ctx, id, func(pos *types.Position, totalDebt *num.Uint) (*ledger.Settlement, error) {
		inEmergency, err := e.eligible(ctx, pos)
		if err != nil {
			return nil, err
		}

		vault, ok := e.registry.PooledHandler(pos.DebtAsset)
		if !ok {
			return nil, types.ErrUnsupportedAsset
		}

		share, err := e.collateralShare(ctx, pos, totalDebt, inEmergency)
		if err != nil {
			return nil, err
		}

		if err := vault.Advance(ctx, pos.DebtAsset, totalDebt); err != nil {
			e.log.Info("vault cannot fund liquidation",
				logging.PositionID(pos.ID),
				logging.AssetID(pos.DebtAsset),
				logging.String("debt", totalDebt.String()),
				logging.Error(err))
			return nil, nil
		}
		return &ledger.Settlement{
			CollateralShare: share,
			Recipient:       vault.VaultAccount(),
			DebtRepaid:      totalDebt.Clone(),
			Unwind: func() error {
				return vault.CancelAdvance(ctx, pos.DebtAsset, totalDebt)
			},
		}, nil
	})
	if err != nil {
		metrics.LiquidationInc("vault", "rejected")
		return nil, err
	}
	if !res.Succeeded {
		metrics.LiquidationInc("vault", "deferred")
		return res, nil
	}

	metrics.LiquidationInc("vault", "liquidated")
	e.broker.Send(events.NewLiquidationEvent(ctx, res))
	e.log.Info("position vault-liquidated",
		logging.PositionID(id),
		logging.PartyID(caller),
		logging.String("debt-repaid", res.DebtRepaid.String()))
	return res, nil
}

// eligible applies the regime rules to a position snapshot and reports
// whether the collateral asset is in full emergency. Under emergency the
// override ratio alone decides and a missing price counts as eligible,
// under the normal regime the effective ratio decides and a missing price
// blocks liquidation.
func (e *Engine) eligible(ctx context.Context, pos *types.Position) (bool, error) {
	inEmergency, overridePPM := e.emergency.IsInEmergency(pos.CollateralAsset)
	ratio, err := e.ratios.RatioFor(ctx, pos)

	if inEmergency {
		if err != nil {
			e.log.Warn("no price available, treating position as liquidatable under emergency",
				logging.PositionID(pos.ID),
				logging.AssetID(pos.CollateralAsset),
				logging.Error(err))
			return true, nil
		}
		if ratio.GTE(num.NewUint(overridePPM)) {
			return true, types.ErrNotEligible
		}
		return true, nil
	}

	if err != nil {
		return false, err
	}
	effective := e.emergency.EffectiveLiquidationRatio(
		pos.CollateralAsset, e.registry.LiquidationRatio(pos.CollateralAsset))
	if ratio.GTE(num.NewUint(effective)) {
		return false, types.ErrNotEligible
	}
	return false, nil
}

// collateralShare sizes the liquidator's cut in collateral units: the
// value of the debt plus the bonus, clamped to the position's collateral
// value. With no usable price under emergency the whole collateral is
// taken, the debt cannot be sized against it.
func (e *Engine) collateralShare(ctx context.Context, pos *types.Position, totalDebt *num.Uint, inEmergency bool) (*num.Uint, error) {
	collateralValue, colErr := e.valuation.StrictValueOf(ctx, pos.CollateralAsset, pos.Collateral)
	debtValue, debtErr := e.valuation.StrictValueOf(ctx, pos.DebtAsset, totalDebt)
	if colErr != nil || debtErr != nil {
		if inEmergency {
			return pos.Collateral.Clone(), nil
		}
		if colErr != nil {
			return nil, colErr
		}
		return nil, debtErr
	}
	if collateralValue.IsZero() {
		return pos.Collateral.Clone(), nil
	}

	bonus := num.UintZero().Div(
		num.UintZero().Mul(collateralValue, num.NewUint(e.liquidationBonus())),
		num.NewUint(types.RatioScale),
	)
	entitlement := num.Min(collateralValue, num.Sum(debtValue, bonus))

	// back into collateral units, floored so the share never exceeds the
	// collateral
	share := num.UintZero().Div(
		num.UintZero().Mul(pos.Collateral, entitlement),
		collateralValue,
	)
	return num.Min(share, pos.Collateral), nil
}

// LiquidationBonus returns the current liquidator bonus at RatioScale.
func (e *Engine) LiquidationBonus() uint64 {
	return e.liquidationBonus()
}

func (e *Engine) liquidationBonus() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bonusPPM
}

func (e *Engine) isAutomation(account string) bool {
	e.autoMu.RLock()
	defer e.autoMu.RUnlock()
	_, ok := e.automation[account]
	return ok
}
