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
	"net/http"
	"os"
	"time"

	"code.aurumprotocol.io/aurum/config"
	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/assets/builtin"
	"code.aurumprotocol.io/aurum/core/aurumtime"
	"code.aurumprotocol.io/aurum/core/broker"
	"code.aurumprotocol.io/aurum/core/emergency"
	"code.aurumprotocol.io/aurum/core/ledger"
	"code.aurumprotocol.io/aurum/core/liquidation"
	"code.aurumprotocol.io/aurum/core/risk"
	"code.aurumprotocol.io/aurum/core/valuation"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
	"code.aurumprotocol.io/aurum/metrics"

	"github.com/jessevdk/go-flags"
)

type NodeCmd struct {
	ctx context.Context

	RootPath string `short:"r" long:"root-path" description:"Path of the root directory holding the configuration"`

	ServeAssets  []string `long:"serve-asset" description:"Asset served by the builtin handler, repeatable"`
	VaultAccount string   `long:"vault-account" default:"vault" description:"Account the builtin handler sends liquidated collateral to"`
}

var nodeCmd NodeCmd

func (opts *NodeCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv(os.Getenv("AURUM_ENV"))
	defer log.AtExit()

	rootPath := opts.RootPath
	if rootPath == "" {
		rootPath = defaultRootPath()
	}

	// derive from the command context so SIGINT/SIGTERM reach the run
	// loop below
	ctx, cancel := context.WithCancel(opts.ctx)
	defer cancel()

	confWatcher, err := config.NewFromFile(ctx, log, rootPath)
	if err != nil {
		return err
	}
	cfg := confWatcher.Get()

	if err := metrics.Setup(); err != nil {
		return err
	}

	tsvc := aurumtime.New()
	brk := broker.New(log)

	registry := assets.NewRegistry(log, cfg.Assets)
	if len(opts.ServeAssets) > 0 {
		handler := builtin.New(opts.VaultAccount)
		for _, asset := range opts.ServeAssets {
			handler.Serve(asset, num.UintZero())
			registry.SetHandler(asset, handler)
		}
	}

	valuationEng := valuation.New(log, cfg.Valuation, nil, nil, registry)
	emergencyReg := emergency.New(log, cfg.Emergency, cfg.Admin, brk)
	ledgerEng := ledger.New(log, cfg.Ledger, tsvc, brk, registry, cfg.Admin, cfg.FeeCollector)
	riskEng := risk.New(log, cfg.Risk, ledgerEng, valuationEng, registry, emergencyReg, tsvc)
	liquidationEng := liquidation.New(log, cfg.Liquidation, ledgerEng, riskEng, valuationEng, emergencyReg, registry, brk, cfg.Admin)

	confWatcher.OnConfigUpdate(func(c config.Config) {
		registry.ReloadConf(c.Assets)
		valuationEng.ReloadConf(c.Valuation)
		emergencyReg.ReloadConf(c.Emergency)
		ledgerEng.ReloadConf(c.Ledger)
		riskEng.ReloadConf(c.Risk)
		liquidationEng.ReloadConf(c.Liquidation)
	})

	srv := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: metrics.Handler(),
	}
	go func() {
		log.Info("metrics endpoint started", logging.String("addr", cfg.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics endpoint failed", logging.Error(err))
			cancel()
		}
	}()

	log.Info("node started", logging.String("root-path", rootPath))
	<-ctx.Done()

	shutdownCtx, sdCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer sdCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics endpoint did not shut down cleanly", logging.Error(err))
	}
	log.Info("node stopped")
	return nil
}

func Node(ctx context.Context, parser *flags.Parser) error {
	nodeCmd = NodeCmd{
		ctx: ctx,
	}
	_, err := parser.AddCommand("node", "Runs an aurum node", "Runs the lending engines with the builtin asset handler and a Prometheus endpoint", &nodeCmd)
	return err
}
