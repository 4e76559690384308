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

package assets

import (
	"code.aurumprotocol.io/aurum/config/encoding"
	"code.aurumprotocol.io/aurum/logging"
)

const (
	// namedLogger is the identifier for package and should ideally match the package name
	// this is simply emitted as a hierarchical label e.g. 'core.assets'.
	namedLogger = "assets"

	// defaultLiquidationRatioPPM is 110% at RatioScale.
	defaultLiquidationRatioPPM = 1_100_000
)

// Config is the configuration of the assets registry.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// DefaultLiquidationRatioPPM applies to assets with no explicit
	// liquidation ratio, at RatioScale.
	DefaultLiquidationRatioPPM uint64 `long:"default-liquidation-ratio-ppm"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:                      encoding.LogLevel{Level: logging.InfoLevel},
		DefaultLiquidationRatioPPM: defaultLiquidationRatioPPM,
	}
}
