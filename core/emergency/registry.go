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

package emergency

import (
	"context"
	"sync"

	"code.aurumprotocol.io/aurum/core/events"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/logging"
)

// Broker needed to send the emergency events out.
type Broker interface {
	Send(event events.Event)
}

// Registry holds the per-asset emergency overrides. A single operator is
// the only writer, mutation is rare and administrative, readers are the
// eligibility checks. Racing administrative writes resolve last-write-wins.
type Registry struct {
	log *logging.Logger
	Config

	operator string
	broker   Broker

	mu     sync.RWMutex
	states map[string]*types.EmergencyState
}

// New instantiates a new emergency registry, operator is the only
// identity allowed to set or clear emergency levels.
func New(log *logging.Logger, config Config, operator string, broker Broker) *Registry {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Registry{
		log:      log,
		Config:   config,
		operator: operator,
		broker:   broker,
		states:   map[string]*types.EmergencyState{},
	}
}

// ReloadConf updates the internal configuration of the registry.
func (r *Registry) ReloadConf(cfg Config) {
	r.log.Info("reloading configuration")
	if r.log.GetLevel() != cfg.Level.Get() {
		r.log.Info("updating log level",
			logging.String("old", r.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		r.log.SetLevel(cfg.Level.Get())
	}

	r.mu.Lock()
	r.Config = cfg
	r.mu.Unlock()
}

// SetEmergency sets the emergency level for an asset. Only the operator
// may call this. Setting EmergencyLevelNone clears the asset.
func (r *Registry) SetEmergency(ctx context.Context, caller, asset string, level types.EmergencyLevel, overrideRatioPPM uint64, reason string) error {
	if caller != r.operator {
		return types.ErrNotAdmin
	}
	if level == types.EmergencyLevelNone {
		return r.Clear(ctx, caller, asset)
	}

	state := &types.EmergencyState{
		Asset:            asset,
		Level:            level,
		OverrideRatioPPM: overrideRatioPPM,
		Reason:           reason,
	}

	r.mu.Lock()
	r.states[asset] = state
	r.mu.Unlock()

	r.log.Warn("emergency level set",
		logging.AssetID(asset),
		logging.String("level", level.String()),
		logging.Uint64("override-ratio-ppm", overrideRatioPPM),
		logging.String("reason", reason),
	)
	r.broker.Send(events.NewEmergencyEvent(ctx, state))
	return nil
}

// Clear removes the emergency state for an asset. Only the operator may
// call this.
func (r *Registry) Clear(ctx context.Context, caller, asset string) error {
	if caller != r.operator {
		return types.ErrNotAdmin
	}

	r.mu.Lock()
	delete(r.states, asset)
	r.mu.Unlock()

	r.log.Info("emergency level cleared", logging.AssetID(asset))
	r.broker.Send(events.NewEmergencyEvent(ctx, &types.EmergencyState{
		Asset: asset,
		Level: types.EmergencyLevelNone,
	}))
	return nil
}

// IsInEmergency reports whether the asset is flagged at full emergency
// level, and if so the override liquidation ratio to apply.
func (r *Registry) IsInEmergency(asset string) (bool, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[asset]
	if !ok || state.Level != types.EmergencyLevelEmergency {
		return false, 0
	}
	return true, state.OverrideRatioPPM
}

// EffectiveLiquidationRatio returns the liquidation ratio eligibility
// should apply outside the emergency regime: the configured ratio, unless
// any emergency level supplies a higher override.
func (r *Registry) EffectiveLiquidationRatio(asset string, configuredPPM uint64) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[asset]
	if !ok || state.OverrideRatioPPM <= configuredPPM {
		return configuredPPM
	}
	return state.OverrideRatioPPM
}

// State returns a copy of the emergency state for an asset.
func (r *Registry) State(asset string) (*types.EmergencyState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[asset]
	if !ok {
		return nil, false
	}
	return state.Clone(), true
}
