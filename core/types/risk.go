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
	"time"

	"code.aurumprotocol.io/aurum/libs/num"
)

// RatioScale is the fixed-point scale for rates, ratios and health
// factors, 1_000_000 == 100%.
const RatioScale uint64 = 1_000_000

// RiskTier is the six-tier classification of a position by its
// collateralization ratio.
type RiskTier int

const (
	// TierUltraSafe ratio >= 300%.
	TierUltraSafe RiskTier = iota
	// TierHealthy ratio >= 200%.
	TierHealthy
	// TierModerate ratio >= 150%.
	TierModerate
	// TierAggressive ratio >= 110%.
	TierAggressive
	// TierExtreme ratio >= 101%.
	TierExtreme
	// TierDangerZone anything below, such positions are still permitted
	// to exist.
	TierDangerZone
)

func (t RiskTier) String() string {
	switch t {
	case TierUltraSafe:
		return "ultra-safe"
	case TierHealthy:
		return "healthy"
	case TierModerate:
		return "moderate"
	case TierAggressive:
		return "aggressive"
	case TierExtreme:
		return "extreme"
	case TierDangerZone:
		return "danger-zone"
	default:
		return "unknown"
	}
}

// RiskSnapshot is derived risk state for a single position, recomputed on
// demand, never cached past the triggering read.
type RiskSnapshot struct {
	PositionID uint64

	// Ratio is the collateralization ratio at RatioScale, MaxUint when the
	// position carries no debt.
	Ratio *num.Uint
	// HealthFactor is Ratio normalized against the effective liquidation
	// ratio at RatioScale, values <= RatioScale indicate eligibility.
	HealthFactor *num.Uint
	Tier         RiskTier

	// LiquidationPrice is the theoretical collateral-asset price (per unit,
	// in the common value unit) at which the position reaches the
	// liquidation threshold. Advisory only.
	LiquidationPrice *num.Uint
	// PriceDropPPM is the relative price drop to reach LiquidationPrice,
	// at RatioScale. Advisory only.
	PriceDropPPM *num.Uint
	// TimeToLiquidation estimates when interest alone drives the position
	// to the liquidation threshold, collateral and price held constant.
	// Zero when already eligible, MaxTimeToLiquidation when unreachable.
	// Advisory only, never authoritative for eligibility.
	TimeToLiquidation time.Duration
}

// MaxTimeToLiquidation is the sentinel estimate for positions interest
// alone can never drive to the liquidation threshold.
const MaxTimeToLiquidation = time.Duration(1<<63 - 1)
