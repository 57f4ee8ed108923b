package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState holds the full amm module state.
type GenesisState struct {
	Params    Params              `json:"params" yaml:"params"`
	Pool      Pool                `json:"pool" yaml:"pool"`
	Positions []LiquidityPosition `json:"positions" yaml:"positions"`
	Counters  []SwapCounter       `json:"counters" yaml:"counters"`
	Roles     []RoleGrant         `json:"roles" yaml:"roles"`
	Paused    bool                `json:"paused" yaml:"paused"`
}

// NewGenesisState creates a genesis state from its parts.
func NewGenesisState(params Params, pool Pool, positions []LiquidityPosition, counters []SwapCounter, roles []RoleGrant, paused bool) *GenesisState {
	return &GenesisState{
		Params:    params,
		Pool:      pool,
		Positions: positions,
		Counters:  counters,
		Roles:     roles,
		Paused:    paused,
	}
}

// DefaultGenesis returns the default genesis state: default configuration
// and an unseeded utide/uusdc pool.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), NewPool("utide", "uusdc"), nil, nil, nil, false)
}

// Validate performs a full consistency check of the genesis state: valid
// configuration and pool, share conservation across positions, counters
// under the threshold, well-formed role grants, no duplicates.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := gs.Pool.Validate(); err != nil {
		return fmt.Errorf("invalid pool: %w", err)
	}
	if gs.Pool.TotalShares.GT(gs.Params.MaxTotalShares) {
		return fmt.Errorf("pool shares %s exceed cap %s", gs.Pool.TotalShares, gs.Params.MaxTotalShares)
	}

	sharesSum := math.ZeroInt()
	seenOwners := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}
		if _, dup := seenOwners[pos.Owner]; dup {
			return fmt.Errorf("duplicate position for %s", pos.Owner)
		}
		seenOwners[pos.Owner] = struct{}{}
		sharesSum = sharesSum.Add(pos.Shares)
	}
	if !sharesSum.Equal(gs.Pool.TotalShares) {
		return fmt.Errorf("position shares %s do not sum to pool total %s", sharesSum, gs.Pool.TotalShares)
	}

	seenActors := make(map[string]struct{}, len(gs.Counters))
	for _, counter := range gs.Counters {
		if err := counter.Validate(gs.Params.SwapCountMax); err != nil {
			return fmt.Errorf("invalid swap counter: %w", err)
		}
		if _, dup := seenActors[counter.Owner]; dup {
			return fmt.Errorf("duplicate swap counter for %s", counter.Owner)
		}
		seenActors[counter.Owner] = struct{}{}
	}

	seenGrants := make(map[string]struct{}, len(gs.Roles))
	for _, grant := range gs.Roles {
		if err := grant.Validate(); err != nil {
			return fmt.Errorf("invalid role grant: %w", err)
		}
		key := grant.Role + "/" + grant.Address
		if _, dup := seenGrants[key]; dup {
			return fmt.Errorf("duplicate grant of %q to %s", grant.Role, grant.Address)
		}
		seenGrants[key] = struct{}{}
	}

	return nil
}
