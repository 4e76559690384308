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

// Package builtin provides an in-memory pooled asset handler, used by the
// standalone node and as a reference implementation of the handler
// capabilities.
package builtin

import (
	"context"
	"errors"
	"sync"

	"code.aurumprotocol.io/aurum/libs/num"
)

var (
	ErrAssetNotServed      = errors.New("asset not served by this handler")
	ErrInsufficientPool    = errors.New("insufficient pooled liquidity")
	ErrInsufficientFunds   = errors.New("insufficient account funds")
	ErrAccountDoesNotExist = errors.New("account does not exist")
)

// Handler is an in-memory pooled liquidity handler. It serves a declared
// set of assets, tracks a shared pool per asset plus per-account balances,
// and can advance pooled funds for automated liquidation.
type Handler struct {
	vaultAccount string

	mu       sync.Mutex
	pools    map[string]*num.Uint
	balances map[string]map[string]*num.Uint
}

func New(vaultAccount string) *Handler {
	return &Handler{
		vaultAccount: vaultAccount,
		pools:        map[string]*num.Uint{},
		balances:     map[string]map[string]*num.Uint{},
	}
}

// Serve declares an asset served by this handler with the given initial
// pooled liquidity.
func (h *Handler) Serve(asset string, poolLiquidity *num.Uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pools[asset] = poolLiquidity.Clone()
}

// Deposit credits an account, faucet style.
func (h *Handler) Deposit(asset, account string, amount *num.Uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credit(asset, account, amount)
}

// Balance returns the balance of an account for an asset.
func (h *Handler) Balance(asset, account string) *num.Uint {
	h.mu.Lock()
	defer h.mu.Unlock()
	accounts, ok := h.balances[asset]
	if !ok {
		return num.UintZero()
	}
	b, ok := accounts[account]
	if !ok {
		return num.UintZero()
	}
	return b.Clone()
}

func (h *Handler) IsSupported(asset string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.pools[asset]
	return ok
}

func (h *Handler) AvailableLiquidity(_ context.Context, asset string) (*num.Uint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	pool, ok := h.pools[asset]
	if !ok {
		return nil, ErrAssetNotServed
	}
	return pool.Clone(), nil
}

func (h *Handler) Lend(_ context.Context, asset string, amount *num.Uint, to string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	pool, ok := h.pools[asset]
	if !ok {
		return ErrAssetNotServed
	}
	if pool.LT(amount) {
		return ErrInsufficientPool
	}
	pool.Sub(pool, amount)
	h.credit(asset, to, amount)
	return nil
}

func (h *Handler) Repay(_ context.Context, asset string, amount *num.Uint, from string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	pool, ok := h.pools[asset]
	if !ok {
		return ErrAssetNotServed
	}
	accounts, ok := h.balances[asset]
	if !ok {
		return ErrAccountDoesNotExist
	}
	b, ok := accounts[from]
	if !ok {
		return ErrAccountDoesNotExist
	}
	if b.LT(amount) {
		return ErrInsufficientFunds
	}
	b.Sub(b, amount)
	pool.Add(pool, amount)
	return nil
}

// Advance commits pooled funds to a liquidation. The advance repays a
// debt owed to this same pool, the outgoing cash and the incoming
// repayment net out, so beyond the liquidity check the pool is left
// untouched.
func (h *Handler) Advance(_ context.Context, asset string, amount *num.Uint) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	pool, ok := h.pools[asset]
	if !ok {
		return ErrAssetNotServed
	}
	if pool.LT(amount) {
		return ErrInsufficientPool
	}
	return nil
}

// CancelAdvance releases a previously committed advance. The advance
// never moved cash out of the pool, so neither does the cancellation.
func (h *Handler) CancelAdvance(_ context.Context, asset string, amount *num.Uint) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.pools[asset]; !ok {
		return ErrAssetNotServed
	}
	return nil
}

func (h *Handler) VaultAccount() string {
	return h.vaultAccount
}

// credit assumes h.mu is held.
func (h *Handler) credit(asset, account string, amount *num.Uint) {
	accounts, ok := h.balances[asset]
	if !ok {
		accounts = map[string]*num.Uint{}
		h.balances[asset] = accounts
	}
	b, ok := accounts[account]
	if !ok {
		b = num.UintZero()
		accounts[account] = b
	}
	b.Add(b, amount)
}
