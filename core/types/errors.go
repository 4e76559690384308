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

package types

import "errors"

// Validation errors, rejected before any state or external effect.
var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrSameAsset     = errors.New("collateral and debt assets must differ")
	ErrRateOverflow  = errors.New("interest rate exceeds sanity ceiling")
)

// Resource errors, rejected before effect.
var (
	ErrInsufficientLiquidity  = errors.New("insufficient liquidity for debt asset")
	ErrInsufficientCollateral = errors.New("amount exceeds position collateral")
)

// Authorization errors, rejected before effect.
var (
	ErrNotOwner               = errors.New("caller is not the position owner")
	ErrNotAdmin               = errors.New("caller is not the administrator")
	ErrPaused                 = errors.New("engine is paused")
	ErrNotPaused              = errors.New("engine is not paused")
	ErrUnauthorizedAutomation = errors.New("caller is not the authorized automation account")
)

// Lookup and lifecycle errors.
var (
	ErrPositionNotFound = errors.New("position not found")
	ErrPositionInactive = errors.New("position is not active")
	ErrUnsupportedAsset = errors.New("no handler registered for asset")
)

// Configuration errors on the administrative surface.
var (
	ErrFeeTooHigh   = errors.New("protocol fee exceeds cap")
	ErrBonusTooHigh = errors.New("liquidation bonus exceeds cap")
)

// ErrNotEligible signals the position does not meet liquidation
// eligibility under the applicable regime.
var ErrNotEligible = errors.New("position is not eligible for liquidation")
