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

package risk

import (
	"code.aurumprotocol.io/aurum/config/encoding"
	"code.aurumprotocol.io/aurum/logging"
)

const (
	// namedLogger is the identifier for package and should ideally match the package name
	// this is simply emitted as a hierarchical label e.g. 'core.risk'.
	namedLogger = "risk"
)

// Config is the configuration of the risk classifier, tier thresholds are
// collateralization ratios at RatioScale.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	UltraSafeThresholdPPM  uint64 `long:"ultra-safe-threshold-ppm"`
	HealthyThresholdPPM    uint64 `long:"healthy-threshold-ppm"`
	ModerateThresholdPPM   uint64 `long:"moderate-threshold-ppm"`
	AggressiveThresholdPPM uint64 `long:"aggressive-threshold-ppm"`
	ExtremeThresholdPPM    uint64 `long:"extreme-threshold-ppm"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration, with the reference tier bands.
func NewDefaultConfig() Config {
	return Config{
		Level:                  encoding.LogLevel{Level: logging.InfoLevel},
		UltraSafeThresholdPPM:  3_000_000,
		HealthyThresholdPPM:    2_000_000,
		ModerateThresholdPPM:   1_500_000,
		AggressiveThresholdPPM: 1_100_000,
		ExtremeThresholdPPM:    1_010_000,
	}
}
