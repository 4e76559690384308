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

package ledger

import (
	"code.aurumprotocol.io/aurum/config/encoding"
	"code.aurumprotocol.io/aurum/logging"
)

const (
	// namedLogger is the identifier for package and should ideally match the package name
	// this is simply emitted as a hierarchical label e.g. 'core.ledger'.
	namedLogger = "ledger"

	// defaultMaxRatePPM caps open/increase rates at 100% per year.
	defaultMaxRatePPM = 1_000_000
	// defaultMaxFeePPM caps the protocol fee on interest at 10%.
	defaultMaxFeePPM = 100_000
	// defaultFeePPM is the initial protocol fee on interest, 0.5%.
	defaultFeePPM = 5_000
)

// Config is the configuration of the position ledger.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// MaxRatePPM is the sanity ceiling on a position's fixed interest
	// rate, parts-per-million per year.
	MaxRatePPM uint64 `long:"max-rate-ppm"`
	// MaxFeePPM caps the runtime-settable protocol fee on interest.
	MaxFeePPM uint64 `long:"max-fee-ppm"`
	// FeePPM is the initial protocol fee on interest payments.
	FeePPM uint64 `long:"fee-ppm"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:      encoding.LogLevel{Level: logging.InfoLevel},
		MaxRatePPM: defaultMaxRatePPM,
		MaxFeePPM:  defaultMaxFeePPM,
		FeePPM:     defaultFeePPM,
	}
}
