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

package events

import (
	"context"

	"code.aurumprotocol.io/aurum/core/types"
)

// Liquidation is emitted when a position is liquidated, directly or
// vault-funded.
type Liquidation struct {
	*Base
	res types.LiquidationResult
}

func NewLiquidationEvent(ctx context.Context, res *types.LiquidationResult) *Liquidation {
	return &Liquidation{
		Base: newBase(ctx, LiquidationEvent),
		res:  *res,
	}
}

func (l Liquidation) Result() types.LiquidationResult {
	return l.res
}
