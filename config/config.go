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

package config

import (
	"os"
	"path/filepath"

	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/emergency"
	"code.aurumprotocol.io/aurum/core/ledger"
	"code.aurumprotocol.io/aurum/core/liquidation"
	"code.aurumprotocol.io/aurum/core/risk"
	"code.aurumprotocol.io/aurum/core/valuation"

	"github.com/BurntSushi/toml"
)

const configFileName = "config.toml"

// Config ties together all other application configuration types.
type Config struct {
	Assets      assets.Config      `group:"Assets" namespace:"assets"`
	Emergency   emergency.Config   `group:"Emergency" namespace:"emergency"`
	Ledger      ledger.Config      `group:"Ledger" namespace:"ledger"`
	Liquidation liquidation.Config `group:"Liquidation" namespace:"liquidation"`
	Risk        risk.Config        `group:"Risk" namespace:"risk"`
	Valuation   valuation.Config   `group:"Valuation" namespace:"valuation"`

	Admin        string `long:"admin" description:"Account granted the administrative operations"`
	FeeCollector string `long:"fee-collector" description:"Account receiving the protocol fee"`
	MetricsAddr  string `long:"metrics-addr" description:"Listen address of the Prometheus endpoint"`
}

// NewDefaultConfig returns a set of default configs for all packages, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Assets:       assets.NewDefaultConfig(),
		Emergency:    emergency.NewDefaultConfig(),
		Ledger:       ledger.NewDefaultConfig(),
		Liquidation:  liquidation.NewDefaultConfig(),
		Risk:         risk.NewDefaultConfig(),
		Valuation:    valuation.NewDefaultConfig(),
		MetricsAddr:  "localhost:2112",
		FeeCollector: "treasury",
	}
}

// Read loads the configuration from rootPath, any key missing from the
// file keeps its default.
func Read(rootPath string) (*Config, error) {
	buf, err := os.ReadFile(filepath.Join(rootPath, configFileName))
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write serializes the configuration into rootPath, creating the
// directory when needed.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o700); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(rootPath, configFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
