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

// Package interest computes simple per-second accrual on outstanding
// principal. All arithmetic is integer with floor division, so accrual is
// deterministic and idempotent within a single instant.
package interest

import (
	"time"

	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
)

// SecondsPerYear uses a 365 day year.
const SecondsPerYear uint64 = 31_536_000

// Accrued returns principal * ratePPM * elapsedSeconds / (SecondsPerYear * 1e6),
// floored. Zero elapsed yields zero.
func Accrued(principal *num.Uint, ratePPM uint64, elapsedSeconds uint64) *num.Uint {
	if elapsedSeconds == 0 || ratePPM == 0 || principal.IsZero() {
		return num.UintZero()
	}
	n := num.UintZero().Mul(principal, num.NewUint(ratePPM))
	n.Mul(n, num.NewUint(elapsedSeconds))
	d := num.UintZero().Mul(num.NewUint(SecondsPerYear), num.NewUint(types.RatioScale))
	return n.Div(n, d)
}

// Pending returns the interest accrued on a position since its last
// update, not yet folded into AccruedInterest. Clocks that appear to run
// backwards yield zero rather than negative elapsed time.
func Pending(p *types.Position, now time.Time) *num.Uint {
	if !p.Active || !now.After(p.LastInterestUpdate) {
		return num.UintZero()
	}
	elapsed := uint64(now.Unix() - p.LastInterestUpdate.Unix())
	return Accrued(p.Principal, p.RatePPM, elapsed)
}

// TotalDebt is principal + accrued-but-unpaid interest + interest pending
// since the last update.
func TotalDebt(p *types.Position, now time.Time) *num.Uint {
	return num.Sum(p.Principal, p.AccruedInterest, Pending(p, now))
}
