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

// Package aurumtime is the single source of time for the engines, none of
// them read the wall clock directly. Until a time is pinned the service
// tracks the wall clock.
package aurumtime

import (
	"sync"
	"time"
)

type Svc struct {
	mu     sync.RWMutex
	now    time.Time
	pinned bool
}

func New() *Svc {
	return &Svc{}
}

// SetTimeNow pins the service time, subsequent GetTimeNow calls return t
// until the next SetTimeNow.
func (s *Svc) SetTimeNow(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = t.UTC()
	s.pinned = true
}

// GetTimeNow returns the pinned time, or the wall clock when no time was
// ever pinned.
func (s *Svc) GetTimeNow() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pinned {
		return s.now
	}
	return time.Now().UTC()
}
