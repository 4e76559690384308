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

package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/assets/builtin"
	"code.aurumprotocol.io/aurum/core/ledger"
	"code.aurumprotocol.io/aurum/core/ledger/mocks"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin        = "admin"
	treasury     = "treasury"
	borrower     = "alice"
	yearOfHours  = 365 * 24 * time.Hour
	sixPercent   = uint64(60_000)
	startEpoch   = int64(1_700_000_000)
	vaultAccount = "vault"
)

type testEngine struct {
	*ledger.Engine
	ctrl     *gomock.Controller
	tsvc     *mocks.MockTimeService
	broker   *mocks.MockBroker
	handler  *builtin.Handler
	registry *assets.Registry
	now      time.Time
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	tsvc := mocks.NewMockTimeService(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	handler := builtin.New(vaultAccount)
	handler.Serve("ETH", num.UintZero())
	handler.Serve("USDC", num.NewUint(1_000_000))

	registry := assets.NewRegistry(logging.NewTestLogger(), assets.NewDefaultConfig())
	registry.SetHandler("ETH", handler)
	registry.SetHandler("USDC", handler)

	te := &testEngine{
		ctrl:     ctrl,
		tsvc:     tsvc,
		broker:   broker,
		handler:  handler,
		registry: registry,
		now:      time.Unix(startEpoch, 0),
	}
	tsvc.EXPECT().GetTimeNow().AnyTimes().DoAndReturn(func() time.Time { return te.now })
	te.Engine = ledger.New(logging.NewTestLogger(), ledger.NewDefaultConfig(), tsvc, broker, registry, admin, treasury)
	return te
}

// openPosition funds the borrower and opens the canonical 2 ETH against
// 3000 USDC at 6% position.
func (te *testEngine) openPosition(t *testing.T) uint64 {
	t.Helper()
	te.handler.Deposit("ETH", borrower, num.NewUint(2))
	id, err := te.Open(context.Background(), borrower, "ETH", "USDC", num.NewUint(2), num.NewUint(3000), sixPercent)
	require.NoError(t, err)
	return id
}

func TestOpenValidation(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	t.Run("zero collateral rejected", func(t *testing.T) {
		_, err := te.Open(ctx, borrower, "ETH", "USDC", num.UintZero(), num.NewUint(100), sixPercent)
		assert.ErrorIs(t, err, types.ErrInvalidAmount)
	})

	t.Run("zero debt rejected", func(t *testing.T) {
		_, err := te.Open(ctx, borrower, "ETH", "USDC", num.NewUint(2), num.UintZero(), sixPercent)
		assert.ErrorIs(t, err, types.ErrInvalidAmount)
	})

	t.Run("same asset on both sides rejected", func(t *testing.T) {
		_, err := te.Open(ctx, borrower, "ETH", "ETH", num.NewUint(2), num.NewUint(100), sixPercent)
		assert.ErrorIs(t, err, types.ErrSameAsset)
	})

	t.Run("rate above maximum rejected", func(t *testing.T) {
		_, err := te.Open(ctx, borrower, "ETH", "USDC", num.NewUint(2), num.NewUint(100), 1_000_001)
		assert.ErrorIs(t, err, types.ErrRateOverflow)
	})

	t.Run("unsupported asset rejected", func(t *testing.T) {
		_, err := te.Open(ctx, borrower, "DOGE", "USDC", num.NewUint(2), num.NewUint(100), sixPercent)
		assert.ErrorIs(t, err, types.ErrUnsupportedAsset)
	})

	t.Run("insufficient pool liquidity rejected", func(t *testing.T) {
		te.handler.Deposit("ETH", borrower, num.NewUint(2))
		_, err := te.Open(ctx, borrower, "ETH", "USDC", num.NewUint(2), num.NewUint(2_000_000), sixPercent)
		assert.ErrorIs(t, err, types.ErrInsufficientLiquidity)
	})
}

func TestOpen(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()

	id := te.openPosition(t)
	assert.Equal(t, uint64(1), id)

	// collateral pulled, debt disbursed
	assert.True(t, te.handler.Balance("ETH", borrower).IsZero())
	assert.True(t, te.handler.Balance("USDC", borrower).EQ(num.NewUint(3000)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.Equal(t, borrower, pos.Borrower)
	assert.True(t, pos.Collateral.EQ(num.NewUint(2)))
	assert.True(t, pos.Principal.EQ(num.NewUint(3000)))
	assert.True(t, pos.AccruedInterest.IsZero())
	assert.Equal(t, sixPercent, pos.RatePPM)
	assert.True(t, pos.Active)
	assert.Equal(t, uint64(1), te.GetTotalActivePositions())

	// identifiers are strictly monotonic
	te.handler.Deposit("ETH", borrower, num.NewUint(2))
	id2, err := te.Open(context.Background(), borrower, "ETH", "USDC", num.NewUint(2), num.NewUint(100), sixPercent)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id2)
}

func TestCollateralManagement(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	t.Run("only the owner can add collateral", func(t *testing.T) {
		err := te.AddCollateral(ctx, "mallory", id, num.NewUint(1))
		assert.ErrorIs(t, err, types.ErrNotOwner)
	})

	t.Run("add collateral moves funds", func(t *testing.T) {
		te.handler.Deposit("ETH", borrower, num.NewUint(3))
		require.NoError(t, te.AddCollateral(ctx, borrower, id, num.NewUint(3)))
		pos, _ := te.GetPosition(id)
		assert.True(t, pos.Collateral.EQ(num.NewUint(5)))
		assert.True(t, te.handler.Balance("ETH", borrower).IsZero())
	})

	t.Run("withdraw more than held rejected", func(t *testing.T) {
		err := te.WithdrawCollateral(ctx, borrower, id, num.NewUint(6))
		assert.ErrorIs(t, err, types.ErrInsufficientCollateral)
	})

	t.Run("withdrawal is permitted even when risky", func(t *testing.T) {
		// no ratio check on withdrawal, the position may become
		// immediately liquidatable
		require.NoError(t, te.WithdrawCollateral(ctx, borrower, id, num.NewUint(4)))
		pos, _ := te.GetPosition(id)
		assert.True(t, pos.Collateral.EQ(num.NewUint(1)))
		assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(4)))
	})

	t.Run("unknown position rejected", func(t *testing.T) {
		err := te.AddCollateral(ctx, borrower, 99, num.NewUint(1))
		assert.ErrorIs(t, err, types.ErrPositionNotFound)
	})
}

func TestIncreaseDebt(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	// a year passes, then the borrower draws more
	te.now = te.now.Add(yearOfHours)
	require.NoError(t, te.IncreaseDebt(ctx, borrower, id, num.NewUint(500)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	// interest on the original principal was banked before the increase
	assert.True(t, pos.AccruedInterest.EQ(num.NewUint(180)), pos.AccruedInterest.String())
	assert.True(t, pos.Principal.EQ(num.NewUint(3500)))
	assert.True(t, te.handler.Balance("USDC", borrower).EQ(num.NewUint(3500)))
}

func TestRepay(t *testing.T) {
	t.Run("partial repayment pays interest first", testRepayPartial)
	t.Run("full repayment closes and releases collateral", testRepayFull)
	t.Run("overpayment is capped at the outstanding debt", testRepayOverpay)
	t.Run("protocol fee is taken from the interest portion", testRepayFee)
	t.Run("anyone may repay on behalf of the borrower", testRepayThirdParty)
}

func testRepayPartial(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	te.now = te.now.Add(yearOfHours)
	require.NoError(t, te.Repay(ctx, borrower, id, num.NewUint(1000)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	// 180 interest cleared first, the remaining 820 hits principal
	assert.True(t, pos.AccruedInterest.IsZero())
	assert.True(t, pos.Principal.EQ(num.NewUint(2180)), pos.Principal.String())
	assert.True(t, pos.Active)
	assert.True(t, te.handler.Balance("USDC", borrower).EQ(num.NewUint(2000)))
}

func testRepayFull(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	te.now = te.now.Add(yearOfHours)
	te.handler.Deposit("USDC", borrower, num.NewUint(180))
	require.NoError(t, te.Repay(ctx, borrower, id, num.NewUint(3180)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.False(t, pos.Active)
	assert.True(t, pos.Principal.IsZero())
	assert.True(t, pos.AccruedInterest.IsZero())
	assert.True(t, pos.Collateral.IsZero())
	assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(2)))
	assert.True(t, te.handler.Balance("USDC", borrower).IsZero())
	assert.Equal(t, uint64(0), te.GetTotalActivePositions())

	// a closed position rejects further operations
	assert.ErrorIs(t, te.Repay(ctx, borrower, id, num.NewUint(1)), types.ErrPositionInactive)
}

func testRepayOverpay(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	te.handler.Deposit("USDC", borrower, num.NewUint(10_000))
	require.NoError(t, te.Repay(ctx, borrower, id, num.NewUint(13_000)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.False(t, pos.Active)
	// only the outstanding 3000 was pulled
	assert.True(t, te.handler.Balance("USDC", borrower).EQ(num.NewUint(10_000)))
}

func testRepayFee(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	require.NoError(t, te.SetProtocolFee(admin, 100_000))

	te.now = te.now.Add(yearOfHours)
	te.handler.Deposit("USDC", borrower, num.NewUint(180))
	require.NoError(t, te.Repay(ctx, borrower, id, num.NewUint(3180)))

	// 10% of the 180 interest paid goes to the collector
	assert.True(t, te.handler.Balance("USDC", treasury).EQ(num.NewUint(18)), te.handler.Balance("USDC", treasury).String())
}

func testRepayThirdParty(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	te.handler.Deposit("USDC", "charlie", num.NewUint(3000))
	require.NoError(t, te.Repay(ctx, "charlie", id, num.NewUint(3000)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.False(t, pos.Active)
	// the collateral always returns to the borrower, not the payer
	assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(2)))
	assert.True(t, te.handler.Balance("ETH", "charlie").IsZero())
}

func TestSettleLiquidation(t *testing.T) {
	t.Run("settlement splits collateral and closes", testSettleSplit)
	t.Run("nil settlement is a recoverable no-op", testSettleDeferred)
	t.Run("callback error leaves the position untouched", testSettleCallbackError)
}

func testSettleSplit(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)
	te.now = te.now.Add(yearOfHours)

	res, err := te.SettleLiquidation(ctx, id, func(pos *types.Position, totalDebt *num.Uint) (*ledger.Settlement, error) {
		require.True(t, totalDebt.EQ(num.NewUint(3180)), totalDebt.String())
		return &ledger.Settlement{
			CollateralShare: num.NewUint(1),
			Recipient:       "liquidator",
			DebtRepaid:      totalDebt.Clone(),
		}, nil
	})
	require.NoError(t, err)
	require.True(t, res.Succeeded)
	assert.True(t, res.CollateralLiquidated.EQ(num.NewUint(1)))
	assert.True(t, res.CollateralReturned.EQ(num.NewUint(1)))
	assert.Equal(t, "liquidator", res.Recipient)

	assert.True(t, te.handler.Balance("ETH", "liquidator").EQ(num.NewUint(1)))
	assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(1)))

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.False(t, pos.Active)
	assert.True(t, pos.Principal.IsZero())
}

func testSettleDeferred(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	res, err := te.SettleLiquidation(ctx, id, func(*types.Position, *num.Uint) (*ledger.Settlement, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.True(t, res.DebtRepaid.IsZero())

	pos, err := te.GetPosition(id)
	require.NoError(t, err)
	assert.True(t, pos.Active)
	assert.True(t, pos.Collateral.EQ(num.NewUint(2)))
}

func testSettleCallbackError(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	wantErr := errors.New("not eligible")
	_, err := te.SettleLiquidation(ctx, id, func(*types.Position, *num.Uint) (*ledger.Settlement, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	pos, _ := te.GetPosition(id)
	assert.True(t, pos.Active)
}

func TestPause(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	t.Run("only the admin can pause", func(t *testing.T) {
		assert.ErrorIs(t, te.Pause(borrower), types.ErrNotAdmin)
	})

	t.Run("paused engine rejects mutating operations", func(t *testing.T) {
		require.NoError(t, te.Pause(admin))
		_, err := te.Open(ctx, borrower, "ETH", "USDC", num.NewUint(1), num.NewUint(1), sixPercent)
		assert.ErrorIs(t, err, types.ErrPaused)
		assert.ErrorIs(t, te.Repay(ctx, borrower, id, num.NewUint(1)), types.ErrPaused)
		assert.ErrorIs(t, te.AddCollateral(ctx, borrower, id, num.NewUint(1)), types.ErrPaused)
		_, err = te.SettleLiquidation(ctx, id, nil)
		assert.ErrorIs(t, err, types.ErrPaused)
	})

	t.Run("queries still work while paused", func(t *testing.T) {
		pos, err := te.GetPosition(id)
		require.NoError(t, err)
		assert.True(t, pos.Active)
	})

	t.Run("unpause restores operations", func(t *testing.T) {
		require.NoError(t, te.Unpause(admin))
		// rejected on its own merits again, not because of the pause
		err := te.AddCollateral(ctx, borrower, id, num.UintZero())
		assert.ErrorIs(t, err, types.ErrInvalidAmount)
	})
}

func TestEmergencyWithdraw(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	id := te.openPosition(t)

	t.Run("rejected while not paused", func(t *testing.T) {
		assert.ErrorIs(t, te.EmergencyWithdraw(ctx, admin, id), types.ErrNotPaused)
	})

	t.Run("rejected for non-admin", func(t *testing.T) {
		require.NoError(t, te.Pause(admin))
		assert.ErrorIs(t, te.EmergencyWithdraw(ctx, borrower, id), types.ErrNotAdmin)
	})

	t.Run("returns collateral and writes off debt", func(t *testing.T) {
		require.NoError(t, te.EmergencyWithdraw(ctx, admin, id))
		pos, err := te.GetPosition(id)
		require.NoError(t, err)
		assert.False(t, pos.Active)
		assert.True(t, pos.Principal.IsZero())
		assert.True(t, te.handler.Balance("ETH", borrower).EQ(num.NewUint(2)))
	})
}

func TestQueries(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()

	for i := 0; i < 5; i++ {
		te.openPosition(t)
	}
	te.handler.Deposit("ETH", "bob", num.NewUint(2))
	_, err := te.Open(context.Background(), "bob", "ETH", "USDC", num.NewUint(2), num.NewUint(100), sixPercent)
	require.NoError(t, err)

	t.Run("positions in range are ordered by identifier", func(t *testing.T) {
		got := te.GetPositionsInRange(2, 5)
		require.Len(t, got, 3)
		assert.Equal(t, uint64(2), got[0].ID)
		assert.Equal(t, uint64(3), got[1].ID)
		assert.Equal(t, uint64(4), got[2].ID)
	})

	t.Run("borrowers are sorted and deduplicated", func(t *testing.T) {
		assert.Equal(t, []string{"alice", "bob"}, te.Borrowers())
	})

	t.Run("total debt includes pending interest", func(t *testing.T) {
		te.now = te.now.Add(yearOfHours)
		debt, err := te.GetTotalDebt(1)
		require.NoError(t, err)
		assert.True(t, debt.EQ(num.NewUint(3180)), debt.String())

		accrued, err := te.GetAccruedInterest(1)
		require.NoError(t, err)
		assert.True(t, accrued.EQ(num.NewUint(180)), accrued.String())
	})
}

func TestAdminKnobs(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()

	t.Run("fee above maximum rejected", func(t *testing.T) {
		assert.ErrorIs(t, te.SetProtocolFee(admin, 100_001), types.ErrFeeTooHigh)
	})

	t.Run("non-admin cannot touch the knobs", func(t *testing.T) {
		assert.ErrorIs(t, te.SetProtocolFee(borrower, 1), types.ErrNotAdmin)
		assert.ErrorIs(t, te.SetFeeCollector(borrower, "x"), types.ErrNotAdmin)
	})

	t.Run("fee collector can be moved", func(t *testing.T) {
		require.NoError(t, te.SetFeeCollector(admin, "newTreasury"))
	})
}
