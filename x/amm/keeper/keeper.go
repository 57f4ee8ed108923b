package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// Keeper owns the module's store and is the only writer of pool state.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper

	// authority can always pause, unpause and manage roles. Normally the
	// governance module account.
	authority string

	// moduleAddr holds escrowed reserves and the reward budget.
	moduleAddr sdk.AccAddress

	hooks   types.AmmHooks
	metrics *Metrics
}

// NewKeeper creates the amm keeper. The authority must be a valid bech32
// address.
func NewKeeper(
	storeKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid amm authority address: %s", err))
	}

	return Keeper{
		storeKey:   storeKey,
		bankKeeper: bankKeeper,
		authority:  authority,
		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
		metrics:    NewMetrics(),
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding the reserves.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// SetHooks sets the module hooks. Called once during app wiring, before any
// server implementations are built from the keeper.
func (k *Keeper) SetHooks(h types.AmmHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set amm hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
