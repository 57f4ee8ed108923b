package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/tidepool-zone/tidepool/x/amm/keeper"
	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// Authority is the governance module account every test keeper is built with.
var Authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

// blockTime is the fixed block timestamp test contexts start at. Deadline
// tests shift it with ctx.WithBlockTime.
var blockTime = time.Unix(1_700_000_000, 0).UTC()

// FutureDeadline returns a deadline comfortably after the context's block
// time.
func FutureDeadline(ctx sdk.Context) int64 {
	return ctx.BlockTime().Unix() + 60
}

// BankCall records one transfer routed through the mock bank keeper, in call
// order.
type BankCall struct {
	Method  string // "to_module" or "to_account"
	Account string
	Module  string
	Coins   sdk.Coins
}

// MockBankKeeper is an in-memory types.BankKeeper. It keeps real balance
// bookkeeping, including the module escrow account, so transfers fail on
// insufficient funds the way the real bank keeper does. Every transfer is
// appended to Calls; SendToModuleErr and SendToAccountErr force failures.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	Calls            []BankCall
	SendToModuleErr  error
	SendToAccountErr error
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// NewMockBankKeeper creates an empty mock bank keeper.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account out of thin air.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// FundModule credits a module account out of thin air.
func (m *MockBankKeeper) FundModule(module string, coins sdk.Coins) {
	m.FundAccount(authtypes.NewModuleAddress(module), coins)
}

// GetBalance returns an account's balance of one denom.
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// SpendableCoins returns an account's full balance; the mock has no locking.
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// SendCoinsFromAccountToModule moves coins into a module escrow account.
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	m.Calls = append(m.Calls, BankCall{
		Method:  "to_module",
		Account: senderAddr.String(),
		Module:  recipientModule,
		Coins:   amt,
	})
	if m.SendToModuleErr != nil {
		return m.SendToModuleErr
	}
	return m.move(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount moves coins out of a module escrow account.
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	m.Calls = append(m.Calls, BankCall{
		Method:  "to_account",
		Account: recipientAddr.String(),
		Module:  senderModule,
		Coins:   amt,
	})
	if m.SendToAccountErr != nil {
		return m.SendToAccountErr
	}
	return m.move(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) move(from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBalance := m.balances[from.String()]
	newFrom, negative := fromBalance.SafeSub(amt...)
	if negative {
		return sdkerrors.ErrInsufficientFunds.Wrapf("%s has %s, cannot send %s", from, fromBalance, amt)
	}
	m.balances[from.String()] = newFrom
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// ResetCalls clears the transfer log, keeping balances.
func (m *MockBankKeeper) ResetCalls() {
	m.Calls = nil
}

// AmmKeeper builds a keeper over an in-memory store, initialized with the
// default genesis state and backed by a fresh mock bank keeper.
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	return AmmKeeperWithGenesis(t, types.DefaultGenesis())
}

// AmmKeeperWithGenesis builds a keeper over an in-memory store and
// initializes it from the given genesis state.
func AmmKeeperWithGenesis(t testing.TB, genState *types.GenesisState) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bankKeeper := NewMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bankKeeper, Authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: blockTime}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *genState))

	return k, bankKeeper, ctx
}

// SeedPool funds the provider, deposits the given amounts as the pool's
// first liquidity and clears the transfer log, leaving a live pool whose
// reserves are fully backed by the module account.
func SeedPool(t testing.TB, k keeper.Keeper, bank *MockBankKeeper, ctx sdk.Context, provider sdk.AccAddress, amountA, amountB math.Int) math.Int {
	pool, err := k.GetPool(ctx)
	require.NoError(t, err)

	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin(pool.AssetA, amountA),
		sdk.NewCoin(pool.AssetB, amountB),
	))
	shares, err := k.Deposit(ctx, provider, amountA, amountB, math.ZeroInt(), math.ZeroInt(), FutureDeadline(ctx))
	require.NoError(t, err)

	bank.ResetCalls()
	return shares
}

// TestAddress returns a deterministic bech32 account address for a test
// actor index.
func TestAddress(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	addr[0] = index
	addr[19] = index
	return sdk.AccAddress(addr)
}
