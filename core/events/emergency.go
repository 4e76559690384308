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

// Emergency is emitted when the operator sets or clears a per-asset
// emergency level.
type Emergency struct {
	*Base
	state types.EmergencyState
}

func NewEmergencyEvent(ctx context.Context, state *types.EmergencyState) *Emergency {
	return &Emergency{
		Base:  newBase(ctx, EmergencyEvent),
		state: *state,
	}
}

func (e Emergency) State() types.EmergencyState {
	return e.state
}
