package cli

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdSwapExactIn(),
		CmdSwapExactOut(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdPause(),
		CmdUnpause(),
		CmdGrantRole(),
		CmdRevokeRole(),
	)

	return ammTxCmd
}

// resolveDeadline turns the relative deadline flag into an absolute unix
// timestamp. A zero or missing flag falls back to five minutes.
func resolveDeadline(cmd *cobra.Command) int64 {
	deadlineSeconds, _ := cmd.Flags().GetInt64(FlagDeadline)
	if deadlineSeconds == 0 {
		deadlineSeconds = 300
	}
	return time.Now().Unix() + deadlineSeconds
}

// CmdSwapExactIn returns a CLI command handler for a fixed-input swap
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in [asset-in] [amount-in] [asset-out] [min-amount-out]",
		Short: "Swap a fixed input amount for at least a minimum output",
		Long: `Sell exactly amount-in of asset-in for as much asset-out as the pool yields.

The transaction fails if the output would fall below min-amount-out.

Example:
  $ tidepoold tx amm swap-exact-in utide 1000000 uusdc 1900000 --from mykey
  $ tidepoold tx amm swap-exact-in uusdc 2000000 utide 950000 --from mykey --deadline 60`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetIn := args[0]
			assetOut := args[2]

			if assetIn == assetOut {
				return fmt.Errorf("asset-in and asset-out must be different")
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			if amountIn.IsZero() || amountIn.IsNegative() {
				return fmt.Errorf("amount-in must be positive")
			}

			if minAmountOut.IsNegative() {
				return fmt.Errorf("min-amount-out cannot be negative")
			}

			msg := types.NewMsgSwapExactIn(
				clientCtx.GetFromAddress().String(),
				assetIn,
				amountIn,
				assetOut,
				minAmountOut,
				resolveDeadline(cmd),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 300, "Transaction deadline in seconds from now")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactOut returns a CLI command handler for a fixed-output swap
func CmdSwapExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-out [asset-in] [max-amount-in] [asset-out] [amount-out]",
		Short: "Swap at most a maximum input for a fixed output amount",
		Long: `Buy exactly amount-out of asset-out, spending no more than max-amount-in of asset-in.

The transaction fails if the required input would exceed max-amount-in.

Example:
  $ tidepoold tx amm swap-exact-out utide 1100000 uusdc 2000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetIn := args[0]
			assetOut := args[2]

			if assetIn == assetOut {
				return fmt.Errorf("asset-in and asset-out must be different")
			}

			maxAmountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid max-amount-in: %s (must be integer)", args[1])
			}

			amountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-out: %s (must be integer)", args[3])
			}

			if amountOut.IsZero() || amountOut.IsNegative() {
				return fmt.Errorf("amount-out must be positive")
			}

			if maxAmountIn.IsZero() || maxAmountIn.IsNegative() {
				return fmt.Errorf("max-amount-in must be positive")
			}

			msg := types.NewMsgSwapExactOut(
				clientCtx.GetFromAddress().String(),
				assetIn,
				maxAmountIn,
				assetOut,
				amountOut,
				resolveDeadline(cmd),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 300, "Transaction deadline in seconds from now")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for adding liquidity
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount-a] [amount-b]",
		Short: "Add liquidity to the pool",
		Long: `Deposit both assets at the pool's current ratio and receive liquidity shares.

Amounts are given in the pool's asset order (lexicographic by denom). The first
deposit into an empty pool sets the ratio.

Example:
  $ tidepoold tx amm deposit 1000000 2000000 --from mykey
  $ tidepoold tx amm deposit 1000000 2000000 --min-shares 1400000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[0])
			}

			amountB, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[1])
			}

			if amountA.IsZero() || amountA.IsNegative() {
				return fmt.Errorf("amount-a must be positive")
			}

			if amountB.IsZero() || amountB.IsNegative() {
				return fmt.Errorf("amount-b must be positive")
			}

			minShares, err := intFlag(cmd, FlagMinShares)
			if err != nil {
				return err
			}
			maxTotalShares, err := intFlag(cmd, FlagMaxTotalShares)
			if err != nil {
				return err
			}

			msg := types.NewMsgDeposit(
				clientCtx.GetFromAddress().String(),
				amountA,
				amountB,
				minShares,
				maxTotalShares,
				resolveDeadline(cmd),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinShares, "0", "Minimum shares to mint")
	cmd.Flags().String(FlagMaxTotalShares, "0", "Abort if total shares would exceed this bound (0 disables)")
	cmd.Flags().Int64(FlagDeadline, 300, "Transaction deadline in seconds from now")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for removing liquidity
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [shares]",
		Short: "Remove liquidity from the pool",
		Long: `Burn liquidity shares and receive both assets proportional to your share
of the pool, rounded down.

Example:
  $ tidepoold tx amm withdraw 1000000 --from mykey
  $ tidepoold tx amm withdraw 1000000 --min-amount-a 990000 --min-amount-b 1980000 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[0])
			}

			if shares.IsZero() || shares.IsNegative() {
				return fmt.Errorf("shares must be positive")
			}

			minAmountA, err := intFlag(cmd, FlagMinAmountA)
			if err != nil {
				return err
			}
			minAmountB, err := intFlag(cmd, FlagMinAmountB)
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdraw(
				clientCtx.GetFromAddress().String(),
				shares,
				minAmountA,
				minAmountB,
				resolveDeadline(cmd),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountA, "0", "Minimum amount of the first asset to receive")
	cmd.Flags().String(FlagMinAmountB, "0", "Minimum amount of the second asset to receive")
	cmd.Flags().Int64(FlagDeadline, 300, "Transaction deadline in seconds from now")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPause returns a CLI command handler for pausing the module
func CmdPause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause swaps and liquidity operations",
		Long: `Pause the amm module. Requires the pauser or admin role.

Example:
  $ tidepoold tx amm pause --from pauserkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgPause(clientCtx.GetFromAddress().String())

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnpause returns a CLI command handler for unpausing the module
func CmdUnpause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Resume swaps and liquidity operations",
		Long: `Unpause the amm module. Requires the pauser or admin role.

Example:
  $ tidepoold tx amm unpause --from pauserkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgUnpause(clientCtx.GetFromAddress().String())

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdGrantRole returns a CLI command handler for granting a role
func CmdGrantRole() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-role [grantee] [role]",
		Short: "Grant an administrative role",
		Long: `Grant the admin or pauser role to an address. Requires the admin role.

Example:
  $ tidepoold tx amm grant-role tide1abcdef... pauser --from adminkey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgGrantRole(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRevokeRole returns a CLI command handler for revoking a role
func CmdRevokeRole() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke-role [grantee] [role]",
		Short: "Revoke an administrative role",
		Long: `Revoke the admin or pauser role from an address. Requires the admin role.

Example:
  $ tidepoold tx amm revoke-role tide1abcdef... pauser --from adminkey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRevokeRole(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// intFlag reads a string flag holding an arbitrary-precision integer.
func intFlag(cmd *cobra.Command, name string) (math.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.Int{}, err
	}
	value, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if value.IsNegative() {
		return math.Int{}, fmt.Errorf("%s cannot be negative", name)
	}
	return value, nil
}
