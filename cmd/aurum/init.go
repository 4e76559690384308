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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"code.aurumprotocol.io/aurum/config"
	"code.aurumprotocol.io/aurum/logging"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	RootPath string `short:"r" long:"root-path" description:"Path of the root directory in which the configuration will be located"`
	Force    bool   `short:"f" long:"force" description:"Erase any existing configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv(os.Getenv("AURUM_ENV"))
	defer log.AtExit()

	rootPath := opts.RootPath
	if rootPath == "" {
		rootPath = defaultRootPath()
	}

	cfgPath := filepath.Join(rootPath, "config.toml")
	if _, err := os.Stat(cfgPath); err == nil && !opts.Force {
		return fmt.Errorf("configuration already exists at %q, remove it first or re-run using -f", cfgPath)
	}

	if err := config.Write(rootPath, config.NewDefaultConfig()); err != nil {
		return err
	}
	log.Info("configuration generated successfully",
		logging.String("path", cfgPath))
	return nil
}

func defaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aurum"
	}
	return filepath.Join(home, ".aurum")
}

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}
	_, err := parser.AddCommand("init", "Initialize an aurum node", "Generate the minimal configuration required for an aurum node to start", &initCmd)
	return err
}
