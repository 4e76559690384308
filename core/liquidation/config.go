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

package liquidation

import (
	"code.aurumprotocol.io/aurum/config/encoding"
	"code.aurumprotocol.io/aurum/logging"
)

const (
	// namedLogger is the identifier for package and should ideally match the package name
	// this is simply emitted as a hierarchical label e.g. 'core.liquidation'.
	namedLogger = "liquidation"
)

// Config is the configuration of the liquidation engine. BonusPPM is the
// liquidator incentive as a fraction of collateral value at RatioScale,
// MaxBonusPPM bounds where the administrator may move it.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	BonusPPM    uint64 `long:"bonus-ppm"`
	MaxBonusPPM uint64 `long:"max-bonus-ppm"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration, a 5% liquidator bonus capped at 20%.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		BonusPPM:    50_000,
		MaxBonusPPM: 200_000,
	}
}
