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

package emergency_test

import (
	"context"
	"testing"

	"code.aurumprotocol.io/aurum/core/emergency"
	"code.aurumprotocol.io/aurum/core/events"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operator = "ops"

type stubBroker struct {
	evts []events.Event
}

func (b *stubBroker) Send(e events.Event) { b.evts = append(b.evts, e) }

func getTestRegistry(t *testing.T) (*emergency.Registry, *stubBroker) {
	t.Helper()
	brk := &stubBroker{}
	return emergency.New(logging.NewTestLogger(), emergency.NewDefaultConfig(), operator, brk), brk
}

func TestSetEmergency(t *testing.T) {
	ctx := context.Background()

	t.Run("only the operator may declare", func(t *testing.T) {
		reg, _ := getTestRegistry(t)
		err := reg.SetEmergency(ctx, "mallory", "ETH", types.EmergencyLevelEmergency, 1_500_000, "depeg")
		assert.ErrorIs(t, err, types.ErrNotAdmin)
	})

	t.Run("full emergency activates the override regime", func(t *testing.T) {
		reg, brk := getTestRegistry(t)
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_500_000, "oracle compromised"))

		active, override := reg.IsInEmergency("ETH")
		assert.True(t, active)
		assert.Equal(t, uint64(1_500_000), override)
		assert.Len(t, brk.evts, 1)

		state, ok := reg.State("ETH")
		require.True(t, ok)
		assert.Equal(t, types.EmergencyLevelEmergency, state.Level)
		assert.Equal(t, "oracle compromised", state.Reason)
	})

	t.Run("warning elevates the ratio without the override regime", func(t *testing.T) {
		reg, _ := getTestRegistry(t)
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelWarning, 1_300_000, "volatility"))

		active, _ := reg.IsInEmergency("ETH")
		assert.False(t, active)
		assert.Equal(t, uint64(1_300_000), reg.EffectiveLiquidationRatio("ETH", 1_100_000))
	})

	t.Run("override never lowers the configured ratio", func(t *testing.T) {
		reg, _ := getTestRegistry(t)
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelWarning, 1_000_000, "test"))
		assert.Equal(t, uint64(1_100_000), reg.EffectiveLiquidationRatio("ETH", 1_100_000))
	})

	t.Run("racing declarations resolve last-write-wins", func(t *testing.T) {
		reg, _ := getTestRegistry(t)
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_400_000, "first"))
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_600_000, "second"))

		_, override := reg.IsInEmergency("ETH")
		assert.Equal(t, uint64(1_600_000), override)
	})

	t.Run("setting level none clears", func(t *testing.T) {
		reg, _ := getTestRegistry(t)
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_500_000, "x"))
		require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelNone, 0, ""))

		active, _ := reg.IsInEmergency("ETH")
		assert.False(t, active)
		_, ok := reg.State("ETH")
		assert.False(t, ok)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	reg, brk := getTestRegistry(t)

	require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_500_000, "x"))
	assert.ErrorIs(t, reg.Clear(ctx, "mallory", "ETH"), types.ErrNotAdmin)
	require.NoError(t, reg.Clear(ctx, operator, "ETH"))

	active, _ := reg.IsInEmergency("ETH")
	assert.False(t, active)
	assert.Equal(t, uint64(1_100_000), reg.EffectiveLiquidationRatio("ETH", 1_100_000))
	assert.Len(t, brk.evts, 2)
}

func TestIsolationBetweenAssets(t *testing.T) {
	ctx := context.Background()
	reg, _ := getTestRegistry(t)

	require.NoError(t, reg.SetEmergency(ctx, operator, "ETH", types.EmergencyLevelEmergency, 1_500_000, "x"))

	active, _ := reg.IsInEmergency("USDC")
	assert.False(t, active)
	assert.Equal(t, uint64(1_100_000), reg.EffectiveLiquidationRatio("USDC", 1_100_000))
}
