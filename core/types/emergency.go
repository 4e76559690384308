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

// EmergencyLevel is the per-asset emergency severity set by the operator.
type EmergencyLevel int

const (
	EmergencyLevelNone EmergencyLevel = iota
	// EmergencyLevelWarning elevates the effective liquidation ratio
	// without switching eligibility to the emergency regime.
	EmergencyLevelWarning
	// EmergencyLevelEmergency switches eligibility to the emergency
	// regime for the asset.
	EmergencyLevelEmergency
)

func (l EmergencyLevel) String() string {
	switch l {
	case EmergencyLevelNone:
		return "none"
	case EmergencyLevelWarning:
		return "warning"
	case EmergencyLevelEmergency:
		return "emergency"
	default:
		return "unknown"
	}
}

// EmergencyState is the operator-set emergency override for one asset.
type EmergencyState struct {
	Asset string
	Level EmergencyLevel
	// OverrideRatioPPM replaces (when in full emergency) or elevates (when
	// warning) the asset's configured liquidation ratio, at RatioScale.
	OverrideRatioPPM uint64
	Reason           string
}

func (s *EmergencyState) Clone() *EmergencyState {
	cpy := *s
	return &cpy
}
