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

// Pos carries the state of a position after a ledger mutation.
type Pos struct {
	*Base
	p *types.Position
}

// NewPositionEvent clones the position so subscribers can never observe a
// later mutation.
func NewPositionEvent(ctx context.Context, p *types.Position) *Pos {
	return &Pos{
		Base: newBase(ctx, PositionEvent),
		p:    p.Clone(),
	}
}

func (p Pos) Position() *types.Position {
	return p.p
}

// CloseReason says how a position reached its terminal state.
type CloseReason int

const (
	CloseReasonRepaid CloseReason = iota
	CloseReasonLiquidated
	CloseReasonEmergencyWithdrawal
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonRepaid:
		return "repaid"
	case CloseReasonLiquidated:
		return "liquidated"
	case CloseReasonEmergencyWithdrawal:
		return "emergency-withdrawal"
	default:
		return "unknown"
	}
}

// PosClosed is emitted when a position reaches its terminal state.
type PosClosed struct {
	*Base
	positionID uint64
	reason     CloseReason
}

func NewPositionClosedEvent(ctx context.Context, id uint64, reason CloseReason) *PosClosed {
	return &PosClosed{
		Base:       newBase(ctx, PositionClosedEvent),
		positionID: id,
		reason:     reason,
	}
}

func (p PosClosed) PositionID() uint64 {
	return p.positionID
}

func (p PosClosed) Reason() CloseReason {
	return p.reason
}
