package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPosition(),
		GetCmdQueryQuoteOut(),
		GetCmdQueryQuoteIn(),
		GetCmdQueryPauseState(),
		GetCmdQuerySwapCounter(),
		GetCmdQuerySpotPrice(),
	)

	return ammQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Long: `Query the pool configuration: fee ratio, share cap, swap cycle length and reward.

Example:
  $ tidepoold query amm params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query the pool
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Query the liquidity pool",
		Long: `Query the pool's asset pair, reserves and outstanding shares.

Example:
  $ tidepoold query amm pool`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition returns the command to query a provider's position
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [owner]",
		Short: "Query a provider's liquidity shares",
		Long: `Query the amount of liquidity shares an address holds.

Example:
  $ tidepoold query amm position tide1abcdef...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Position(context.Background(), &types.QueryPositionRequest{
				Owner: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuoteOut returns the command to quote a fixed-input swap
func GetCmdQueryQuoteOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-out [asset-in] [amount-in] [asset-out]",
		Short: "Quote the output for a fixed input without executing",
		Long: `Quote how much asset-out a fixed asset-in amount would buy right now,
including fees.

Example:
  $ tidepoold query amm quote-out utide 1000000 uusdc`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.QuoteOut(context.Background(), &types.QueryQuoteOutRequest{
				AssetIn:  args[0],
				AmountIn: amountIn,
				AssetOut: args[2],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuoteIn returns the command to quote a fixed-output swap
func GetCmdQueryQuoteIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-in [asset-in] [amount-out] [asset-out]",
		Short: "Quote the required input for a fixed output without executing",
		Long: `Quote the smallest asset-in amount that buys a fixed asset-out amount right
now, including fees.

Example:
  $ tidepoold query amm quote-in utide 2000000 uusdc`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountOut, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-out: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.QuoteIn(context.Background(), &types.QueryQuoteInRequest{
				AssetIn:   args[0],
				AmountOut: amountOut,
				AssetOut:  args[2],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPauseState returns the command to query the pause flag
func GetCmdQueryPauseState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause-state",
		Short: "Query whether the module is paused",
		Long: `Query the pause flag.

Example:
  $ tidepoold query amm pause-state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.PauseState(context.Background(), &types.QueryPauseStateRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySwapCounter returns the command to query an actor's swap counter
func GetCmdQuerySwapCounter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-counter [actor]",
		Short: "Query an actor's incentive swap counter",
		Long: `Query how many swaps an actor has completed in its current reward cycle.

Example:
  $ tidepoold query amm swap-counter tide1abcdef...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SwapCounter(context.Background(), &types.QuerySwapCounterRequest{
				Actor: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySpotPrice returns the command to query the spot price
func GetCmdQuerySpotPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price [asset-in]",
		Short: "Query the fee-less spot price of an asset",
		Long: `Query the marginal price of one unit of asset-in in units of the opposite
asset, ignoring fees.

Example:
  $ tidepoold query amm spot-price utide`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SpotPrice(context.Background(), &types.QuerySpotPriceRequest{
				AssetIn: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
