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
)

// Type of an engine event.
type Type int

const (
	PositionEvent Type = iota
	PositionClosedEvent
	LiquidationEvent
	EmergencyEvent
)

func (t Type) String() string {
	switch t {
	case PositionEvent:
		return "PositionEvent"
	case PositionClosedEvent:
		return "PositionClosedEvent"
	case LiquidationEvent:
		return "LiquidationEvent"
	case EmergencyEvent:
		return "EmergencyEvent"
	default:
		return "UnknownEvent"
	}
}

// Event is the interface all engine events implement, brokers fan these
// out to subscribers.
type Event interface {
	Type() Type
	Context() context.Context
}

// Base underlying event data.
type Base struct {
	ctx context.Context
	t   Type
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx: ctx,
		t:   t,
	}
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.t
}

// Context returns the context the event was emitted under.
func (b Base) Context() context.Context {
	return b.ctx
}
