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
	"context"
	"sort"
	"sync"
	"time"

	"code.aurumprotocol.io/aurum/core/assets"
	"code.aurumprotocol.io/aurum/core/events"
	"code.aurumprotocol.io/aurum/core/interest"
	"code.aurumprotocol.io/aurum/core/types"
	"code.aurumprotocol.io/aurum/libs/num"
	"code.aurumprotocol.io/aurum/logging"
	"code.aurumprotocol.io/aurum/metrics"

	"golang.org/x/exp/maps"
)

// TimeService supplies the engine time, engines never read the wall clock
// directly.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks code.aurumprotocol.io/aurum/core/ledger TimeService
type TimeService interface {
	GetTimeNow() time.Time
}

// Broker needed to send the position events out.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.aurumprotocol.io/aurum/core/ledger Broker
type Broker interface {
	Send(event events.Event)
}

// HandlerRegistry resolves the asset handler capability serving an asset.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/handler_registry_mock.go -package mocks code.aurumprotocol.io/aurum/core/ledger HandlerRegistry
type HandlerRegistry interface {
	Handler(asset string) (assets.AssetHandler, bool)
	IsSupported(asset string) bool
}

// positionState pairs a position with its write lock, mutations on a
// given position are serialized, operations on different positions
// proceed concurrently.
type positionState struct {
	mu  sync.Mutex
	pos *types.Position
}

// Engine is the position ledger. It exclusively owns position state, no
// other component mutates a position directly.
type Engine struct {
	log *logging.Logger
	Config

	cfgMu sync.Mutex

	tsvc     TimeService
	broker   Broker
	registry HandlerRegistry

	admin string

	// adminMu guards the runtime administrative knobs below.
	adminMu      sync.RWMutex
	feePPM       uint64
	feeCollector string
	paused       bool

	// mu guards the positions map structure, not individual positions.
	mu        sync.RWMutex
	positions map[uint64]*positionState
	nextID    uint64
	active    uint64
}

// New instantiates a new position ledger. admin is the only identity
// allowed on the administrative surface.
func New(log *logging.Logger, config Config, tsvc TimeService, broker Broker, registry HandlerRegistry, admin, feeCollector string) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		log:          log,
		Config:       config,
		tsvc:         tsvc,
		broker:       broker,
		registry:     registry,
		admin:        admin,
		feePPM:       config.FeePPM,
		feeCollector: feeCollector,
		positions:    map[uint64]*positionState{},
	}
}

// ReloadConf updates the internal configuration of the ledger.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.cfgMu.Lock()
	e.Config = cfg
	e.cfgMu.Unlock()
}

// Open creates a new position: collateral is pulled from the borrower,
// the requested debt is disbursed to them. There is no minimum
// collateralization requirement, arbitrarily risky positions are
// permitted by design.
func (e *Engine) Open(ctx context.Context, borrower, collateralAsset, debtAsset string, collateralAmount, debtAmount *num.Uint, ratePPM uint64) (uint64, error) {
	defer metrics.StartEngineOp(namedLogger, "open")()

	if err := e.rejectWhenPaused(); err != nil {
		return 0, err
	}
	if collateralAmount.IsZero() || debtAmount.IsZero() {
		return 0, types.ErrInvalidAmount
	}
	if collateralAsset == debtAsset {
		return 0, types.ErrSameAsset
	}
	if ratePPM > e.MaxRatePPM {
		return 0, types.ErrRateOverflow
	}

	colHandler, ok := e.registry.Handler(collateralAsset)
	if !ok || !colHandler.IsSupported(collateralAsset) {
		return 0, types.ErrUnsupportedAsset
	}
	debtHandler, ok := e.registry.Handler(debtAsset)
	if !ok || !debtHandler.IsSupported(debtAsset) {
		return 0, types.ErrUnsupportedAsset
	}

	available, err := debtHandler.AvailableLiquidity(ctx, debtAsset)
	if err != nil {
		return 0, err
	}
	if available.LT(debtAmount) {
		return 0, types.ErrInsufficientLiquidity
	}

	// pull collateral first, then disburse, refunding the collateral if
	// the disbursement fails so the operation stays all-or-nothing
	if err := colHandler.Repay(ctx, collateralAsset, collateralAmount, borrower); err != nil {
		return 0, err
	}
	if err := debtHandler.Lend(ctx, debtAsset, debtAmount, borrower); err != nil {
		if rerr := colHandler.Lend(ctx, collateralAsset, collateralAmount, borrower); rerr != nil {
			e.log.Error("failed to refund collateral after aborted open",
				logging.PartyID(borrower),
				logging.AssetID(collateralAsset),
				logging.Error(rerr))
		}
		return 0, err
	}

	now := e.tsvc.GetTimeNow()

	e.mu.Lock()
	e.nextID++
	id := e.nextID
	pos := &types.Position{
		ID:                 id,
		Borrower:           borrower,
		CollateralAsset:    collateralAsset,
		DebtAsset:          debtAsset,
		Collateral:         collateralAmount.Clone(),
		Principal:          debtAmount.Clone(),
		AccruedInterest:    num.UintZero(),
		RatePPM:            ratePPM,
		CreatedAt:          now,
		LastInterestUpdate: now,
		Active:             true,
	}
	e.positions[id] = &positionState{pos: pos}
	e.active++
	metrics.ActivePositionsSet(e.active)
	e.mu.Unlock()

	e.broker.Send(events.NewPositionEvent(ctx, pos))
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("position opened", logging.String("position", pos.String()))
	}
	return id, nil
}

// AddCollateral tops up the collateral of an active position. Any amount
// is accepted, there is no upper bound.
func (e *Engine) AddCollateral(ctx context.Context, caller string, id uint64, amount *num.Uint) error {
	defer metrics.StartEngineOp(namedLogger, "add-collateral")()

	if err := e.rejectWhenPaused(); err != nil {
		return err
	}
	if amount.IsZero() {
		return types.ErrInvalidAmount
	}

	ps, err := e.lookup(id)
	if err != nil {
		return err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return types.ErrPositionInactive
	}
	if pos.Borrower != caller {
		return types.ErrNotOwner
	}

	handler, ok := e.registry.Handler(pos.CollateralAsset)
	if !ok {
		return types.ErrUnsupportedAsset
	}
	if err := handler.Repay(ctx, pos.CollateralAsset, amount, caller); err != nil {
		return err
	}

	pos.Collateral.Add(pos.Collateral, amount)
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	return nil
}

// WithdrawCollateral releases part of the collateral back to the
// borrower. Deliberately performs no post-withdrawal ratio check, the
// position may become immediately liquidatable.
func (e *Engine) WithdrawCollateral(ctx context.Context, caller string, id uint64, amount *num.Uint) error {
	defer metrics.StartEngineOp(namedLogger, "withdraw-collateral")()

	if err := e.rejectWhenPaused(); err != nil {
		return err
	}
	if amount.IsZero() {
		return types.ErrInvalidAmount
	}

	ps, err := e.lookup(id)
	if err != nil {
		return err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return types.ErrPositionInactive
	}
	if pos.Borrower != caller {
		return types.ErrNotOwner
	}
	if amount.GT(pos.Collateral) {
		return types.ErrInsufficientCollateral
	}

	handler, ok := e.registry.Handler(pos.CollateralAsset)
	if !ok {
		return types.ErrUnsupportedAsset
	}
	if err := handler.Lend(ctx, pos.CollateralAsset, amount, caller); err != nil {
		return err
	}

	pos.Collateral.Sub(pos.Collateral, amount)
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	return nil
}

// IncreaseDebt borrows more against an existing position. Interest is
// accrued first so the new principal only accrues from now on. No ratio
// check is applied.
func (e *Engine) IncreaseDebt(ctx context.Context, caller string, id uint64, amount *num.Uint) error {
	defer metrics.StartEngineOp(namedLogger, "increase-debt")()

	if err := e.rejectWhenPaused(); err != nil {
		return err
	}
	if amount.IsZero() {
		return types.ErrInvalidAmount
	}

	ps, err := e.lookup(id)
	if err != nil {
		return err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return types.ErrPositionInactive
	}
	if pos.Borrower != caller {
		return types.ErrNotOwner
	}

	now := e.tsvc.GetTimeNow()
	e.accrue(pos, now)

	handler, ok := e.registry.Handler(pos.DebtAsset)
	if !ok {
		return types.ErrUnsupportedAsset
	}
	available, err := handler.AvailableLiquidity(ctx, pos.DebtAsset)
	if err != nil {
		return err
	}
	if available.LT(amount) {
		return types.ErrInsufficientLiquidity
	}
	if err := handler.Lend(ctx, pos.DebtAsset, amount, caller); err != nil {
		return err
	}

	pos.Principal.Add(pos.Principal, amount)
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	return nil
}

// Repay pays down a position's debt, interest first then principal. The
// payment is capped at the outstanding total debt, overpaying is not an
// error. When both principal and accrued interest reach zero the
// remaining collateral is returned to the borrower and the position is
// closed in the same operation.
func (e *Engine) Repay(ctx context.Context, caller string, id uint64, amount *num.Uint) error {
	defer metrics.StartEngineOp(namedLogger, "repay")()

	if err := e.rejectWhenPaused(); err != nil {
		return err
	}
	if amount.IsZero() {
		return types.ErrInvalidAmount
	}

	ps, err := e.lookup(id)
	if err != nil {
		return err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return types.ErrPositionInactive
	}

	now := e.tsvc.GetTimeNow()
	e.accrue(pos, now)

	totalDebt := num.Sum(pos.Principal, pos.AccruedInterest)
	repayAmount := num.Min(amount, totalDebt).Clone()
	closes := repayAmount.EQ(totalDebt)

	interestPaid := num.Min(repayAmount, pos.AccruedInterest).Clone()
	principalPaid := num.UintZero().Sub(repayAmount, interestPaid)
	fee := e.protocolFee(interestPaid)

	handler, ok := e.registry.Handler(pos.DebtAsset)
	if !ok {
		return types.ErrUnsupportedAsset
	}
	colHandler, ok := e.registry.Handler(pos.CollateralAsset)
	if !ok {
		return types.ErrUnsupportedAsset
	}

	// all external steps run before any state is touched, each later
	// failure unwinds the earlier transfers so the operation stays
	// all-or-nothing
	if err := handler.Repay(ctx, pos.DebtAsset, repayAmount, caller); err != nil {
		return err
	}
	if !fee.IsZero() {
		if err := handler.Lend(ctx, pos.DebtAsset, fee, e.getFeeCollector()); err != nil {
			e.unwind(ctx, func() error {
				return handler.Lend(ctx, pos.DebtAsset, repayAmount, caller)
			})
			return err
		}
	}
	if closes && !pos.Collateral.IsZero() {
		// collateral must be released before the position can be observed
		// inactive
		if err := colHandler.Lend(ctx, pos.CollateralAsset, pos.Collateral, pos.Borrower); err != nil {
			e.unwind(ctx, func() error {
				if !fee.IsZero() {
					if ferr := handler.Repay(ctx, pos.DebtAsset, fee, e.getFeeCollector()); ferr != nil {
						return ferr
					}
				}
				return handler.Lend(ctx, pos.DebtAsset, repayAmount, caller)
			})
			return err
		}
	}

	pos.AccruedInterest.Sub(pos.AccruedInterest, interestPaid)
	pos.Principal.Sub(pos.Principal, principalPaid)

	if closes {
		pos.Collateral = num.UintZero()
		e.deactivate(pos)
		e.broker.Send(events.NewPositionClosedEvent(ctx, pos.ID, events.CloseReasonRepaid))
	}
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("repayment applied",
			logging.PositionID(pos.ID),
			logging.String("repaid", repayAmount.String()),
			logging.String("interest-portion", interestPaid.String()),
			logging.String("principal-portion", principalPaid.String()),
			logging.Bool("closed", closes))
	}
	return nil
}

// Settlement is the funding outcome a liquidation settlement callback
// hands back to the ledger.
type Settlement struct {
	// CollateralShare goes to Recipient, the remainder of the position's
	// collateral returns to the borrower.
	CollateralShare *num.Uint
	Recipient       string
	// DebtRepaid is reported on the result, the funding transfers already
	// happened inside the callback.
	DebtRepaid *num.Uint
	// Unwind reverses the callback's external transfers should the
	// settlement fail after funding.
	Unwind func() error
}

// SettleFunc inspects a consistent snapshot of the position and its total
// debt, performs the funding transfers and decides the collateral split.
type SettleFunc func(pos *types.Position, totalDebt *num.Uint) (*Settlement, error)

// SettleLiquidation runs a liquidation settlement under the position's
// write lock: the callback funds the debt repayment and computes the
// collateral share, the ledger then moves collateral and closes the
// position. The callback sees a clone, only the ledger mutates.
func (e *Engine) SettleLiquidation(ctx context.Context, id uint64, settle SettleFunc) (*types.LiquidationResult, error) {
	defer metrics.StartEngineOp(namedLogger, "settle-liquidation")()

	if err := e.rejectWhenPaused(); err != nil {
		return nil, err
	}
	ps, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return nil, types.ErrPositionInactive
	}

	now := e.tsvc.GetTimeNow()
	e.accrue(pos, now)
	totalDebt := num.Sum(pos.Principal, pos.AccruedInterest)

	stl, err := settle(pos.Clone(), totalDebt.Clone())
	if err != nil {
		return nil, err
	}
	if stl == nil {
		// recoverable no-op, vault could not fund
		return types.EmptyLiquidationResult(id), nil
	}

	if stl.CollateralShare.GT(pos.Collateral) {
		// the entitlement clamp upstream makes this impossible
		e.log.Panic("liquidation share exceeds position collateral",
			logging.PositionID(id),
			logging.String("share", stl.CollateralShare.String()),
			logging.String("collateral", pos.Collateral.String()))
	}

	colHandler, ok := e.registry.Handler(pos.CollateralAsset)
	if !ok {
		e.unwind(ctx, stl.Unwind)
		return nil, types.ErrUnsupportedAsset
	}

	remainder := num.UintZero().Sub(pos.Collateral, stl.CollateralShare)
	if !stl.CollateralShare.IsZero() {
		if err := colHandler.Lend(ctx, pos.CollateralAsset, stl.CollateralShare, stl.Recipient); err != nil {
			e.unwind(ctx, stl.Unwind)
			return nil, err
		}
	}
	if !remainder.IsZero() {
		if err := colHandler.Lend(ctx, pos.CollateralAsset, remainder, pos.Borrower); err != nil {
			e.unwind(ctx, stl.Unwind, func() error {
				return colHandler.Repay(ctx, pos.CollateralAsset, stl.CollateralShare, stl.Recipient)
			})
			return nil, err
		}
	}

	pos.Principal = num.UintZero()
	pos.AccruedInterest = num.UintZero()
	pos.Collateral = num.UintZero()
	e.deactivate(pos)

	res := &types.LiquidationResult{
		Succeeded:            true,
		PositionID:           id,
		DebtRepaid:           stl.DebtRepaid.Clone(),
		CollateralLiquidated: stl.CollateralShare.Clone(),
		CollateralReturned:   remainder,
		Recipient:            stl.Recipient,
	}
	e.broker.Send(events.NewPositionClosedEvent(ctx, id, events.CloseReasonLiquidated))
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	return res, nil
}

// EmergencyWithdraw is the administrator escape hatch while the engine is
// paused: the position's collateral is returned to its borrower and the
// position is written off.
func (e *Engine) EmergencyWithdraw(ctx context.Context, caller string, id uint64) error {
	defer metrics.StartEngineOp(namedLogger, "emergency-withdraw")()

	if caller != e.admin {
		return types.ErrNotAdmin
	}
	if !e.isPaused() {
		return types.ErrNotPaused
	}

	ps, err := e.lookup(id)
	if err != nil {
		return err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	pos := ps.pos
	if !pos.Active {
		return types.ErrPositionInactive
	}

	if !pos.Collateral.IsZero() {
		handler, ok := e.registry.Handler(pos.CollateralAsset)
		if !ok {
			return types.ErrUnsupportedAsset
		}
		if err := handler.Lend(ctx, pos.CollateralAsset, pos.Collateral, pos.Borrower); err != nil {
			return err
		}
	}

	e.log.Warn("emergency withdrawal, outstanding debt written off",
		logging.PositionID(id),
		logging.PartyID(pos.Borrower),
		logging.String("principal", pos.Principal.String()),
		logging.String("accrued-interest", pos.AccruedInterest.String()))

	pos.Principal = num.UintZero()
	pos.AccruedInterest = num.UintZero()
	pos.Collateral = num.UintZero()
	e.deactivate(pos)

	e.broker.Send(events.NewPositionClosedEvent(ctx, id, events.CloseReasonEmergencyWithdrawal))
	e.broker.Send(events.NewPositionEvent(ctx, pos))
	return nil
}

// GetPosition returns a copy of the position.
func (e *Engine) GetPosition(id uint64) (*types.Position, error) {
	ps, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.pos.Clone(), nil
}

// GetTotalDebt returns principal plus all interest accrued to now.
func (e *Engine) GetTotalDebt(id uint64) (*num.Uint, error) {
	ps, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return interest.TotalDebt(ps.pos, e.tsvc.GetTimeNow()), nil
}

// GetAccruedInterest returns all interest accrued to now, banked and
// pending.
func (e *Engine) GetAccruedInterest(id uint64) (*num.Uint, error) {
	ps, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	pos := ps.pos
	return num.Sum(pos.AccruedInterest, interest.Pending(pos, e.tsvc.GetTimeNow())), nil
}

// GetPositionsInRange returns copies of the positions with identifiers in
// [start, end), ordered by identifier, for batch scanning.
func (e *Engine) GetPositionsInRange(start, end uint64) []*types.Position {
	e.mu.RLock()
	ids := make([]uint64, 0, len(e.positions))
	for id := range e.positions {
		if id >= start && id < end {
			ids = append(ids, id)
		}
	}
	states := make([]*positionState, 0, len(ids))
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		states = append(states, e.positions[id])
	}
	e.mu.RUnlock()

	out := make([]*types.Position, 0, len(states))
	for _, ps := range states {
		ps.mu.Lock()
		out = append(out, ps.pos.Clone())
		ps.mu.Unlock()
	}
	return out
}

// GetTotalActivePositions returns the number of active positions.
func (e *Engine) GetTotalActivePositions() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// Borrowers returns the set of borrowers with at least one position,
// sorted for determinism.
func (e *Engine) Borrowers() []string {
	e.mu.RLock()
	set := map[string]struct{}{}
	for _, ps := range e.positions {
		set[ps.pos.Borrower] = struct{}{}
	}
	e.mu.RUnlock()

	borrowers := maps.Keys(set)
	sort.Strings(borrowers)
	return borrowers
}

// SetProtocolFee updates the protocol fee on interest, capped by
// configuration.
func (e *Engine) SetProtocolFee(caller string, feePPM uint64) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	if feePPM > e.MaxFeePPM {
		return types.ErrFeeTooHigh
	}
	e.adminMu.Lock()
	e.feePPM = feePPM
	e.adminMu.Unlock()
	e.log.Info("protocol fee updated", logging.Uint64("fee-ppm", feePPM))
	return nil
}

// SetFeeCollector updates the account receiving protocol fees.
func (e *Engine) SetFeeCollector(caller, account string) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.adminMu.Lock()
	e.feeCollector = account
	e.adminMu.Unlock()
	e.log.Info("fee collector updated", logging.PartyID(account))
	return nil
}

// Pause blocks all mutating operations except the administrator's
// emergency withdrawal.
func (e *Engine) Pause(caller string) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.adminMu.Lock()
	e.paused = true
	e.adminMu.Unlock()
	e.log.Warn("ledger paused")
	return nil
}

// Unpause re-enables mutating operations.
func (e *Engine) Unpause(caller string) error {
	if caller != e.admin {
		return types.ErrNotAdmin
	}
	e.adminMu.Lock()
	e.paused = false
	e.adminMu.Unlock()
	e.log.Info("ledger unpaused")
	return nil
}

func (e *Engine) lookup(id uint64) (*positionState, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ps, ok := e.positions[id]
	if !ok {
		return nil, types.ErrPositionNotFound
	}
	return ps, nil
}

// accrue folds pending interest into the position, at most once per
// instant, the caller holds the position lock.
func (e *Engine) accrue(pos *types.Position, now time.Time) {
	if !now.After(pos.LastInterestUpdate) {
		return
	}
	pending := interest.Pending(pos, now)
	pos.AccruedInterest.Add(pos.AccruedInterest, pending)
	pos.LastInterestUpdate = now
}

// deactivate marks the position terminal, the caller holds the position
// lock and has zeroed principal and interest.
func (e *Engine) deactivate(pos *types.Position) {
	if !pos.Principal.IsZero() || !pos.AccruedInterest.IsZero() {
		e.log.Panic("deactivating a position with outstanding debt",
			logging.PositionID(pos.ID),
			logging.String("principal", pos.Principal.String()),
			logging.String("accrued-interest", pos.AccruedInterest.String()))
	}
	pos.Active = false

	e.mu.Lock()
	e.active--
	metrics.ActivePositionsSet(e.active)
	e.mu.Unlock()
}

func (e *Engine) protocolFee(interestPaid *num.Uint) *num.Uint {
	e.adminMu.RLock()
	feePPM := e.feePPM
	e.adminMu.RUnlock()
	if feePPM == 0 || interestPaid.IsZero() {
		return num.UintZero()
	}
	fee := num.UintZero().Mul(interestPaid, num.NewUint(feePPM))
	return fee.Div(fee, num.NewUint(types.RatioScale))
}

func (e *Engine) getFeeCollector() string {
	e.adminMu.RLock()
	defer e.adminMu.RUnlock()
	return e.feeCollector
}

func (e *Engine) isPaused() bool {
	e.adminMu.RLock()
	defer e.adminMu.RUnlock()
	return e.paused
}

func (e *Engine) rejectWhenPaused() error {
	if e.isPaused() {
		return types.ErrPaused
	}
	return nil
}

// unwind runs compensating transfers in order, failures are logged, there
// is nothing else the engine can do at that point.
func (e *Engine) unwind(_ context.Context, steps ...func() error) {
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			e.log.Error("compensating transfer failed", logging.Error(err))
		}
	}
}
