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

package liquidation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/assets/builtin"
	"code.aurumprotocol.io/aurum/core/ledger"
	ledgermocks "code.aurumprotocol.io/aurum/core/ledger/mocks"
	"code.aurumprotocol.io/aurum/core/liquidation"
	"code.aurumprotocol.io/aurum/core/liquidation/mocks"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin      = "admin"
	borrower   = "alice"
	liquidator = "bob"
	keeper     = "keeper"
)

type testEngine struct {
	*liquidation.Engine
	ctrl      *gomock.Controller
	ledger    *ledger.Engine
	handler   *builtin.Handler
	ratios    *mocks.MockRatioSource
	valuation *mocks.MockValuation
	emergency *mocks.MockEmergency
	now       time.Time
}

// getTestEngine wires a real ledger and builtin handler under the
// liquidation engine, prices and ratios come from mocks.
func getTestEngine(t *testing.T, usdcPool uint64) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)

	handler := builtin.New("vault")
	handler.Serve("ETH", num.UintZero())
	handler.Serve("USDC", num.NewUint(usdcPool))

	registry := assets.NewRegistry(logging.NewTestLogger(), assets.NewDefaultConfig())
	registry.SetHandler("ETH", handler)
	registry.SetHandler("USDC", handler)

	te := &testEngine{
		ctrl:      ctrl,
		handler:   handler,
		ratios:    mocks.NewMockRatioSource(ctrl),
		valuation: mocks.NewMockValuation(ctrl),
		emergency: mocks.NewMockEmergency(ctrl),
		now:       time.Unix(1_700_000_000, 0),
	}

	tsvc := ledgermocks.NewMockTimeService(ctrl)
	tsvc.EXPECT().GetTimeNow().AnyTimes().DoAndReturn(func() time.Time { return te.now })
	broker := ledgermocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	te.ledger = ledger.New(logging.NewTestLogger(), ledger.NewDefaultConfig(), tsvc, broker, registry, admin, "treasury")
	te.Engine = liquidation.New(logging.NewTestLogger(), liquidation.NewDefaultConfig(),
		te.ledger, te.ratios, te.valuation, te.emergency, registry, broker, admin)
	return te
}

func (te *testEngine) noEmergency() {
	te.emergency.EXPECT().IsInEmergency(gomock.Any()).AnyTimes().Return(false, uint64(0))
	te.emergency.EXPECT().EffectiveLiquidationRatio(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ string, configured uint64) uint64 { return configured })
}

func (te *testEngine) openPosition(t *testing.T, collateral, debt uint64) uint64 {
	t.Helper()
	te.handler.Deposit("ETH", borrower, num.NewUint(collateral))
	id, err := te.ledger.Open(context.Background(), borrower, "ETH", "USDC",
		num.NewUint(collateral), num.NewUint(debt), 60_000)
	require.NoError(t, err)
	return id
}

func (te *testEngine) expectValues(ethValue, usdcValue uint64) {
	te.valuation.EXPECT().StrictValueOf(gomock.Any(), "ETH", gomock.Any()).AnyTimes().
		Return(num.NewUint(ethValue), nil)
	te.valuation.EXPECT().StrictValueOf(gomock.Any(), "USDC", gomock.Any()).AnyTimes().
		Return(num.NewUint(usdcValue), nil)
}

func TestDirectLiquidation(t *testing.T) {
	t.Run("deep underwater position forfeits all collateral", testLiquidateFullShare)
	t.Run("mildly underwater position returns a remainder", testLiquidateRemainder)
	t.Run("healthy position is not eligible", testLiquidateNotEligible)
	t.Run("missing price blocks liquidation outside emergency", testLiquidateFailClosed)
}

func testLiquidateFullShare(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()

	// 1 ETH worth 2500 against 2625 debt, ratio 95.2%
	id := te.openPosition(t, 1, 2625)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(952_380), nil)
	te.expectValues(2500, 2625)

	te.handler.Deposit("USDC", liquidator, num.NewUint(2625))
	res, err := te.Liquidate(ctx, liquidator, id)
	require.NoError(t, err)
	require.True(t, res.Succeeded)

	// debt value plus bonus exceeds the collateral value, the whole
	// collateral goes to the liquidator
	assert.True(t, res.DebtRepaid.EQ(num.NewUint(2625)))
	assert.True(t, res.CollateralLiquidated.EQ(num.NewUint(1)))
	assert.True(t, res.CollateralReturned.IsZero())
	assert.Equal(t, liquidator, res.Recipient)

	assert.True(t, te.handler.Balance("USDC", liquidator).IsZero())
	assert.True(t, te.handler.Balance("ETH", liquidator).EQ(num.NewUint(1)))

	pos, err := te.ledger.GetPosition(id)
	require.NoError(t, err)
	assert.False(t, pos.Active)
}

func testLiquidateRemainder(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()

	// 1000 collateral units worth 3200 against 3000 debt, ratio 106.7%
	id := te.openPosition(t, 1000, 3000)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(1_066_666), nil)
	te.expectValues(3200, 3000)

	te.handler.Deposit("USDC", liquidator, num.NewUint(3000))
	res, err := te.Liquidate(ctx, liquidator, id)
	require.NoError(t, err)
	require.True(t, res.Succeeded)

	// entitlement 3000 + 5% of 3200 = 3160, in collateral units
	// 1000 * 3160 / 3200 = 987
	assert.True(t, res.CollateralLiquidated.EQ(num.NewUint(987)), res.CollateralLiquidated.String())
	assert.True(t, res.CollateralReturned.EQ(num.NewUint(13)), res.CollateralReturned.String())
	assert.True(t, te.handler.Balance("ETH", liquidator).EQ(num.NewUint(987)))
	assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(13)))
}

func testLiquidateNotEligible(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()

	id := te.openPosition(t, 2, 3000)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(1_666_666), nil)

	te.handler.Deposit("USDC", liquidator, num.NewUint(5000))
	_, err := te.Liquidate(ctx, liquidator, id)
	assert.ErrorIs(t, err, types.ErrNotEligible)

	// the liquidator paid nothing and the position is untouched
	assert.True(t, te.handler.Balance("USDC", liquidator).EQ(num.NewUint(5000)))
	pos, _ := te.ledger.GetPosition(id)
	assert.True(t, pos.Active)
}

func testLiquidateFailClosed(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()

	id := te.openPosition(t, 2, 3000)
	priceErr := errors.New("all price sources failed")
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(nil, priceErr)

	_, err := te.Liquidate(ctx, liquidator, id)
	assert.ErrorIs(t, err, priceErr)

	pos, _ := te.ledger.GetPosition(id)
	assert.True(t, pos.Active)
}

func TestEmergencyRegime(t *testing.T) {
	t.Run("override ratio alone decides eligibility", testEmergencyOverride)
	t.Run("missing price counts as eligible", testEmergencyFailOpen)
	t.Run("position above the override stays safe", testEmergencyStillSafe)
}

func testEmergencyOverride(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()

	// ratio 120% would be safe normally, the 150% override catches it
	id := te.openPosition(t, 1000, 3000)
	te.emergency.EXPECT().IsInEmergency("ETH").AnyTimes().Return(true, uint64(1_500_000))
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(1_200_000), nil)
	te.expectValues(3600, 3000)

	te.handler.Deposit("USDC", liquidator, num.NewUint(3000))
	res, err := te.Liquidate(ctx, liquidator, id)
	require.NoError(t, err)
	assert.True(t, res.Succeeded)
}

func testEmergencyFailOpen(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()

	id := te.openPosition(t, 1000, 3000)
	te.emergency.EXPECT().IsInEmergency("ETH").AnyTimes().Return(true, uint64(1_500_000))
	priceErr := errors.New("all price sources failed")
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(nil, priceErr)
	te.valuation.EXPECT().StrictValueOf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil, priceErr)

	te.handler.Deposit("USDC", liquidator, num.NewUint(3000))
	res, err := te.Liquidate(ctx, liquidator, id)
	require.NoError(t, err)
	require.True(t, res.Succeeded)

	// without a usable price the debt cannot be sized against the
	// collateral, the whole collateral is taken
	assert.True(t, res.CollateralLiquidated.EQ(num.NewUint(1000)))
	assert.True(t, res.CollateralReturned.IsZero())
}

func testEmergencyStillSafe(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()

	id := te.openPosition(t, 1000, 3000)
	te.emergency.EXPECT().IsInEmergency("ETH").AnyTimes().Return(true, uint64(1_500_000))
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(1_600_000), nil)

	_, err := te.Liquidate(ctx, liquidator, id)
	assert.ErrorIs(t, err, types.ErrNotEligible)
}

func TestVaultLiquidation(t *testing.T) {
	t.Run("unauthorized caller rejected", testVaultUnauthorized)
	t.Run("vault advances the debt and keeps the collateral", testVaultFunded)
	t.Run("vault that cannot fund defers without touching the position", testVaultCannotFund)
	t.Run("revoked automation rejected again", testVaultRevoked)
}

func testVaultUnauthorized(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()

	_, err := te.VaultLiquidate(context.Background(), keeper, 1)
	assert.ErrorIs(t, err, types.ErrUnauthorizedAutomation)
}

func testVaultFunded(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()
	require.NoError(t, te.EnableAutomation(admin, keeper))

	id := te.openPosition(t, 1, 2625)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(952_380), nil)
	te.expectValues(2500, 2625)

	poolBefore, err := te.handler.AvailableLiquidity(ctx, "USDC")
	require.NoError(t, err)

	res, err := te.VaultLiquidate(ctx, keeper, id)
	require.NoError(t, err)
	require.True(t, res.Succeeded)
	assert.Equal(t, "vault", res.Recipient)
	assert.True(t, res.DebtRepaid.EQ(num.NewUint(2625)))
	assert.True(t, te.handler.Balance("ETH", "vault").EQ(num.NewUint(1)))

	// the advance repays a debt owed to the pool it came from, no cash
	// may leak out of the pool
	poolAfter, err := te.handler.AvailableLiquidity(ctx, "USDC")
	require.NoError(t, err)
	assert.True(t, poolAfter.EQ(poolBefore),
		"pool changed: before=%s after=%s", poolBefore, poolAfter)

	pos, _ := te.ledger.GetPosition(id)
	assert.False(t, pos.Active)
}

func testVaultCannotFund(t *testing.T) {
	// the pool holds exactly the opening disbursement, nothing is left
	// to advance
	te := getTestEngine(t, 2625)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()
	require.NoError(t, te.EnableAutomation(admin, keeper))

	id := te.openPosition(t, 1, 2625)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(952_380), nil)
	te.expectValues(2500, 2625)

	res, err := te.VaultLiquidate(ctx, keeper, id)
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.True(t, res.DebtRepaid.IsZero())

	pos, _ := te.ledger.GetPosition(id)
	assert.True(t, pos.Active)
	assert.True(t, pos.Collateral.EQ(num.NewUint(1)))
}

func testVaultRevoked(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()

	require.NoError(t, te.EnableAutomation(admin, keeper))
	require.NoError(t, te.DisableAutomation(admin, keeper))

	_, err := te.VaultLiquidate(context.Background(), keeper, 1)
	assert.ErrorIs(t, err, types.ErrUnauthorizedAutomation)
}

func TestCheckEligibility(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()

	id := te.openPosition(t, 1, 2625)

	t.Run("eligible position", func(t *testing.T) {
		te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(952_380), nil)
		assert.NoError(t, te.CheckEligibility(ctx, id))
	})

	t.Run("safe position", func(t *testing.T) {
		te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(2_000_000), nil)
		assert.ErrorIs(t, te.CheckEligibility(ctx, id), types.ErrNotEligible)
	})

	t.Run("unknown position", func(t *testing.T) {
		assert.ErrorIs(t, te.CheckEligibility(ctx, 99), types.ErrPositionNotFound)
	})
}

func TestLiquidationBonus(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()

	t.Run("bonus above the cap rejected", func(t *testing.T) {
		assert.ErrorIs(t, te.SetLiquidationBonus(admin, 200_001), types.ErrBonusTooHigh)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		assert.ErrorIs(t, te.SetLiquidationBonus(liquidator, 10_000), types.ErrNotAdmin)
		assert.ErrorIs(t, te.EnableAutomation(liquidator, keeper), types.ErrNotAdmin)
	})

	t.Run("bonus moves within the cap", func(t *testing.T) {
		require.NoError(t, te.SetLiquidationBonus(admin, 200_000))
		assert.Equal(t, uint64(200_000), te.LiquidationBonus())
	})
}

// The liquidator's share can never exceed the position's collateral, even
// with the bonus at its cap and the debt far above the collateral value.
func TestShareNeverExceedsCollateral(t *testing.T) {
	te := getTestEngine(t, 1_000_000)
	defer te.ctrl.Finish()
	ctx := context.Background()
	te.noEmergency()
	require.NoError(t, te.SetLiquidationBonus(admin, 200_000))

	id := te.openPosition(t, 1000, 10_000)
	te.ratios.EXPECT().RatioFor(gomock.Any(), gomock.Any()).Times(1).Return(num.NewUint(250_000), nil)
	te.expectValues(2500, 10_000)

	te.handler.Deposit("USDC", liquidator, num.NewUint(10_000))
	res, err := te.Liquidate(ctx, liquidator, id)
	require.NoError(t, err)
	require.True(t, res.Succeeded)

	assert.True(t, res.CollateralLiquidated.EQ(num.NewUint(1000)))
	assert.True(t, res.CollateralReturned.IsZero())
	// split invariant, nothing minted or burned
	total := num.Sum(res.CollateralLiquidated, res.CollateralReturned)
	assert.True(t, total.EQ(num.NewUint(1000)))
}
