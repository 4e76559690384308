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

package broker

import (
	"sync"

	"code.aurumprotocol.io/aurum/core/events"
	"code.aurumprotocol.io/aurum/logging"
)

const namedLogger = "broker"

// Subscriber receives events fanned out by the broker. Push must not
// block, slow consumers are expected to buffer internally.
type Subscriber interface {
	Push(evt events.Event)
	Types() []events.Type
}

// Broker fans engine events out to registered subscribers. Subscribers
// registered for no specific type receive everything.
type Broker struct {
	log *logging.Logger

	mu     sync.RWMutex
	subs   map[int]Subscriber
	nextID int
}

func New(log *logging.Logger) *Broker {
	log = log.Named(namedLogger)
	return &Broker{
		log:  log,
		subs: map[int]Subscriber{},
	}
}

// Subscribe registers a subscriber and returns its registration key.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[b.nextID] = s
	return b.nextID
}

// Unsubscribe removes a subscriber, unknown keys are ignored.
func (b *Broker) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}

// Send a single event to all interested subscribers.
func (b *Broker) Send(evt events.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if interested(s, evt.Type()) {
			s.Push(evt)
		}
	}
}

// SendBatch sends a batch of events, preserving order per subscriber.
func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		for _, evt := range evts {
			if interested(s, evt.Type()) {
				s.Push(evt)
			}
		}
	}
}

func interested(s Subscriber, t events.Type) bool {
	types := s.Types()
	if len(types) == 0 {
		return true
	}
	for _, st := range types {
		if st == t {
			return true
		}
	}
	return false
}
