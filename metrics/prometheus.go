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

package metrics

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrAlreadySetup signals a second call to Setup.
var ErrAlreadySetup = errors.New("metrics already set up")

var (
	engineOpCounter     *prometheus.CounterVec
	engineOpTimeCounter *prometheus.CounterVec
	activePositionGauge prometheus.Gauge
	liquidationCounter  *prometheus.CounterVec
)

// Setup registers the engine instruments with the default prometheus
// registry. Engines degrade to no-op recording when Setup was never
// called, so unit tests need no metrics bootstrap.
func Setup() error {
	if engineOpCounter != nil {
		return ErrAlreadySetup
	}

	engineOpCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aurum",
			Subsystem: "engine",
			Name:      "op_total",
			Help:      "Number of operations per engine",
		},
		[]string{"engine", "op"},
	)
	engineOpTimeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aurum",
			Subsystem: "engine",
			Name:      "op_seconds_total",
			Help:      "Total time spent per engine operation",
		},
		[]string{"engine", "op"},
	)
	activePositionGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "aurum",
			Subsystem: "ledger",
			Name:      "active_positions",
			Help:      "Number of active positions",
		},
	)
	liquidationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aurum",
			Subsystem: "liquidation",
			Name:      "attempts_total",
			Help:      "Liquidation attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	for _, c := range []prometheus.Collector{
		engineOpCounter,
		engineOpTimeCounter,
		activePositionGauge,
		liquidationCounter,
	} {
		if err := prometheus.Register(c); err != nil {
			return errors.Wrap(err, "failed to register metrics collector")
		}
	}
	return nil
}

// Handler returns the http handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartEngineOp records one engine operation, the returned func adds the
// elapsed time when called, meant for defer.
func StartEngineOp(engine, op string) func() {
	if engineOpCounter == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		engineOpCounter.WithLabelValues(engine, op).Inc()
		engineOpTimeCounter.WithLabelValues(engine, op).Add(time.Since(start).Seconds())
	}
}

// ActivePositionsSet updates the active position gauge.
func ActivePositionsSet(n uint64) {
	if activePositionGauge == nil {
		return
	}
	activePositionGauge.Set(float64(n))
}

// LiquidationInc counts a liquidation attempt, kind is direct or vault,
// outcome is liquidated, rejected or deferred.
func LiquidationInc(kind, outcome string) {
	if liquidationCounter == nil {
		return
	}
	liquidationCounter.WithLabelValues(kind, outcome).Inc()
}
