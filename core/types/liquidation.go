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

import (
	"code.aurumprotocol.io/aurum/libs/num"
)

// LiquidationResult reports the outcome of a liquidation attempt.
// Succeeded=false with no error is a recoverable "try again later"
// outcome, the position is left untouched.
type LiquidationResult struct {
	Succeeded  bool
	PositionID uint64

	// DebtRepaid is the total debt extinguished, principal plus accrued
	// interest, in the debt asset.
	DebtRepaid *num.Uint
	// CollateralLiquidated is the collateral amount transferred to the
	// liquidator or the vault.
	CollateralLiquidated *num.Uint
	// CollateralReturned is the remainder handed back to the borrower.
	CollateralReturned *num.Uint
	// Recipient received the liquidated collateral, an external liquidator
	// or the vault account.
	Recipient string
}

// EmptyLiquidationResult is the untouched-position outcome for id.
func EmptyLiquidationResult(id uint64) *LiquidationResult {
	return &LiquidationResult{
		PositionID:           id,
		DebtRepaid:           num.UintZero(),
		CollateralLiquidated: num.UintZero(),
		CollateralReturned:   num.UintZero(),
	}
}
