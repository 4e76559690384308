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

package assets

import (
	"context"
	"errors"
	"sync"

	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
)

var (
	ErrUnknownAsset = errors.New("unknown asset")
)

// AssetHandler is the external liquidity-provisioning capability for a
// given asset. Implementations must report failure rather than hang, the
// engines never apply timeouts themselves.
type AssetHandler interface {
	IsSupported(asset string) bool
	AvailableLiquidity(ctx context.Context, asset string) (*num.Uint, error)
	// Lend moves amount of asset out of the handler to the given account.
	Lend(ctx context.Context, asset string, amount *num.Uint, to string) error
	// Repay pulls amount of asset from the given account into the handler.
	Repay(ctx context.Context, asset string, amount *num.Uint, from string) error
}

// PooledHandler is an asset handler backed by a shared liquidity vault,
// able to advance funds on the engine's behalf during automated
// liquidation.
type PooledHandler interface {
	AssetHandler
	// Advance commits amount of pooled funds to a liquidation, the vault
	// recoups the advance from the collateral it receives. The advance
	// funds the repayment of a debt owed to the same pool, so the pool
	// must come out cash-neutral.
	Advance(ctx context.Context, asset string, amount *num.Uint) error
	// CancelAdvance releases a previously committed advance, used when a
	// later step of the liquidation fails.
	CancelAdvance(ctx context.Context, asset string, amount *num.Uint) error
	// VaultAccount is the account liquidated collateral is sent to.
	VaultAccount() string
}

// Registry maps assets to their handlers and risk parameters. It replaces
// try-each-handler dispatch with a straight capability lookup.
type Registry struct {
	log *logging.Logger
	cfg Config

	mu        sync.RWMutex
	handlers  map[string]AssetHandler
	liqRatios map[string]uint64
	decimals  map[string]uint8
}

func NewRegistry(log *logging.Logger, cfg Config) *Registry {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Registry{
		log:       log,
		cfg:       cfg,
		handlers:  map[string]AssetHandler{},
		liqRatios: map[string]uint64{},
		decimals:  map[string]uint8{},
	}
}

// ReloadConf updates the internal configuration.
func (r *Registry) ReloadConf(cfg Config) {
	r.log.Info("reloading configuration")
	if r.log.GetLevel() != cfg.Level.Get() {
		r.log.Info("updating log level",
			logging.String("old", r.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		r.log.SetLevel(cfg.Level.Get())
	}

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
}

// SetHandler registers or replaces the handler serving an asset.
func (r *Registry) SetHandler(asset string, h AssetHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[asset] = h
	r.log.Info("asset handler registered", logging.AssetID(asset))
}

// Handler returns the handler serving an asset.
func (r *Registry) Handler(asset string) (AssetHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[asset]
	return h, ok
}

// PooledHandler returns the pooled handler serving an asset, false when
// the asset has no handler or its handler is not vault backed.
func (r *Registry) PooledHandler(asset string) (PooledHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[asset]
	if !ok {
		return nil, false
	}
	ph, ok := h.(PooledHandler)
	return ph, ok
}

// IsSupported reports whether a handler serves the asset.
func (r *Registry) IsSupported(asset string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[asset]
	return ok && h.IsSupported(asset)
}

// SetLiquidationRatio configures the per-asset liquidation ratio at
// RatioScale.
func (r *Registry) SetLiquidationRatio(asset string, ratioPPM uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.liqRatios[asset] = ratioPPM
}

// LiquidationRatio returns the configured liquidation ratio for the
// asset, falling back to the registry default.
func (r *Registry) LiquidationRatio(asset string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ratio, ok := r.liqRatios[asset]; ok {
		return ratio
	}
	return r.cfg.DefaultLiquidationRatioPPM
}

// SetDecimals declares the decimal precision of an asset.
func (r *Registry) SetDecimals(asset string, decimals uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decimals[asset] = decimals
}

// Decimals returns the declared decimal precision of an asset, callers
// fall back to 18 on error.
func (r *Registry) Decimals(asset string) (uint8, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decimals[asset]
	if !ok {
		return 0, ErrUnknownAsset
	}
	return d, nil
}
