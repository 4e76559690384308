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
	"fmt"
	"time"

	"code.aurumprotocol.io/aurum/libs/num"
)

// Position is a single borrower's collateral+debt pair under management.
// Identifiers are allocated monotonically by the ledger and never reused.
// All amounts are expressed in the asset's smallest indivisible unit.
type Position struct {
	ID              uint64
	Borrower        string
	CollateralAsset string
	DebtAsset       string

	Collateral *num.Uint
	Principal  *num.Uint
	// AccruedInterest is interest accrued but not yet repaid, it does not
	// include interest pending since LastInterestUpdate.
	AccruedInterest *num.Uint

	// RatePPM is the fixed interest rate in parts-per-million per year.
	RatePPM uint64

	CreatedAt          time.Time
	LastInterestUpdate time.Time

	Active bool
}

// Clone returns a deep copy of the position.
func (p *Position) Clone() *Position {
	cpy := *p
	cpy.Collateral = p.Collateral.Clone()
	cpy.Principal = p.Principal.Clone()
	cpy.AccruedInterest = p.AccruedInterest.Clone()
	return &cpy
}

func (p Position) String() string {
	return fmt.Sprintf(
		"Position{id=%d, borrower=%s, collateral=%s %s, principal=%s %s, accrued=%s, rate=%dppm, active=%v}",
		p.ID, p.Borrower, p.Collateral.String(), p.CollateralAsset,
		p.Principal.String(), p.DebtAsset, p.AccruedInterest.String(),
		p.RatePPM, p.Active,
	)
}
