package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key layout. Single-byte prefixes; address-keyed records append the
// raw address bytes to their prefix.
var (
	// PoolKey stores the module's single pool record.
	PoolKey = []byte{0x01}

	// PositionKeyPrefix + address stores a provider's shares.
	PositionKeyPrefix = []byte{0x02}

	// CounterKeyPrefix + address stores an actor's swap counter.
	CounterKeyPrefix = []byte{0x03}

	// ParamsKey stores the pool configuration.
	ParamsKey = []byte{0x04}

	// PausedKey stores the pause flag.
	PausedKey = []byte{0x05}

	// RoleKeyPrefix + role byte + address marks a role grant.
	RoleKeyPrefix = []byte{0x06}
)

// PositionKey returns the store key for a provider's liquidity position.
func PositionKey(provider sdk.AccAddress) []byte {
	return append(append([]byte{}, PositionKeyPrefix...), provider.Bytes()...)
}

// CounterKey returns the store key for an actor's swap counter.
func CounterKey(actor sdk.AccAddress) []byte {
	return append(append([]byte{}, CounterKeyPrefix...), actor.Bytes()...)
}

// RoleKey returns the store key marking a role grant.
func RoleKey(roleByte byte, addr sdk.AccAddress) []byte {
	key := append([]byte{}, RoleKeyPrefix...)
	key = append(key, roleByte)
	return append(key, addr.Bytes()...)
}
