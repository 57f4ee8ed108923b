package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the module's single two-asset pool. AssetA sorts lexicographically
// before AssetB; reserves are denominated in each asset's smallest unit.
type Pool struct {
	AssetA      string   `protobuf:"bytes,1,opt,name=asset_a,json=assetA,proto3" json:"asset_a" yaml:"asset_a"`
	AssetB      string   `protobuf:"bytes,2,opt,name=asset_b,json=assetB,proto3" json:"asset_b" yaml:"asset_b"`
	ReserveA    math.Int `protobuf:"bytes,3,opt,name=reserve_a,json=reserveA,proto3,customtype=cosmossdk.io/math.Int" json:"reserve_a" yaml:"reserve_a"`
	ReserveB    math.Int `protobuf:"bytes,4,opt,name=reserve_b,json=reserveB,proto3,customtype=cosmossdk.io/math.Int" json:"reserve_b" yaml:"reserve_b"`
	TotalShares math.Int `protobuf:"bytes,5,opt,name=total_shares,json=totalShares,proto3,customtype=cosmossdk.io/math.Int" json:"total_shares" yaml:"total_shares"`
}

func (p *Pool) Reset()         { *p = Pool{} }
func (p *Pool) String() string { return string(ModuleCdc.MustMarshalJSON(p)) }
func (*Pool) ProtoMessage()    {}

// NewPool creates an empty pool for the given asset pair, ordering the
// assets lexicographically.
func NewPool(assetA, assetB string) Pool {
	if assetB < assetA {
		assetA, assetB = assetB, assetA
	}
	return Pool{
		AssetA:      assetA,
		AssetB:      assetB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Validate checks structural pool invariants: valid ordered denoms,
// non-negative holdings, and all-or-nothing emptiness.
func (p Pool) Validate() error {
	if err := sdk.ValidateDenom(p.AssetA); err != nil {
		return fmt.Errorf("invalid asset A denom %q: %w", p.AssetA, err)
	}
	if err := sdk.ValidateDenom(p.AssetB); err != nil {
		return fmt.Errorf("invalid asset B denom %q: %w", p.AssetB, err)
	}
	if p.AssetA == p.AssetB {
		return fmt.Errorf("pool assets must differ, got %q twice", p.AssetA)
	}
	if p.AssetB < p.AssetA {
		return fmt.Errorf("pool assets out of order: %q before %q", p.AssetA, p.AssetB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return fmt.Errorf("pool holdings must not be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return fmt.Errorf("pool holdings must be non-negative")
	}
	if p.TotalShares.IsPositive() && (p.ReserveA.IsZero() || p.ReserveB.IsZero()) {
		return fmt.Errorf("shares outstanding against an empty reserve")
	}
	if p.TotalShares.IsZero() && (p.ReserveA.IsPositive() || p.ReserveB.IsPositive()) {
		return fmt.Errorf("reserves held without shares outstanding")
	}
	return nil
}

// IsEmpty reports whether the pool holds no reserves and no shares.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero()
}

// ContainsAsset reports whether denom is one of the pool's two assets.
func (p Pool) ContainsAsset(denom string) bool {
	return denom == p.AssetA || denom == p.AssetB
}

// ReservesFor returns the (reserveIn, reserveOut) pair for a swap of assetIn
// against assetOut, failing when the pair does not match the pool.
func (p Pool) ReservesFor(assetIn, assetOut string) (math.Int, math.Int, error) {
	if assetIn == assetOut {
		return math.Int{}, math.Int{}, ErrInvalidAssetPair.Wrapf("asset %q on both sides", assetIn)
	}
	if !p.ContainsAsset(assetIn) {
		return math.Int{}, math.Int{}, ErrInvalidAssetPair.Wrapf("asset %q not in pool %s/%s", assetIn, p.AssetA, p.AssetB)
	}
	if !p.ContainsAsset(assetOut) {
		return math.Int{}, math.Int{}, ErrInvalidAssetPair.Wrapf("asset %q not in pool %s/%s", assetOut, p.AssetA, p.AssetB)
	}
	if assetIn == p.AssetA {
		return p.ReserveA, p.ReserveB, nil
	}
	return p.ReserveB, p.ReserveA, nil
}

// LiquidityPosition records one provider's share of the pool.
type LiquidityPosition struct {
	Owner  string   `json:"owner" yaml:"owner"`
	Shares math.Int `json:"shares" yaml:"shares"`
}

// Validate checks the position record.
func (lp LiquidityPosition) Validate() error {
	if _, err := sdk.AccAddressFromBech32(lp.Owner); err != nil {
		return fmt.Errorf("invalid position owner %q: %w", lp.Owner, err)
	}
	if lp.Shares.IsNil() || !lp.Shares.IsPositive() {
		return fmt.Errorf("position shares must be positive")
	}
	return nil
}

// SwapCounter records an actor's completed swaps since the last reward.
// Count stays within [0, SwapCountMax).
type SwapCounter struct {
	Owner string `json:"owner" yaml:"owner"`
	Count uint64 `json:"count" yaml:"count"`
}

// Validate checks the counter record against the configured threshold.
func (sc SwapCounter) Validate(swapCountMax uint64) error {
	if _, err := sdk.AccAddressFromBech32(sc.Owner); err != nil {
		return fmt.Errorf("invalid counter owner %q: %w", sc.Owner, err)
	}
	if sc.Count == 0 {
		return fmt.Errorf("zero counter for %s must not be stored", sc.Owner)
	}
	if sc.Count >= swapCountMax {
		return fmt.Errorf("counter %d for %s at or above threshold %d", sc.Count, sc.Owner, swapCountMax)
	}
	return nil
}

// RoleGrant records one administrative role held by an address.
type RoleGrant struct {
	Address string `json:"address" yaml:"address"`
	Role    string `json:"role" yaml:"role"`
}

// Validate checks the role grant record.
func (rg RoleGrant) Validate() error {
	if _, err := sdk.AccAddressFromBech32(rg.Address); err != nil {
		return fmt.Errorf("invalid grant address %q: %w", rg.Address, err)
	}
	if !ValidRole(rg.Role) {
		return fmt.Errorf("unknown role %q", rg.Role)
	}
	return nil
}
