package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const (
	flagSequential       = "sequential"
	flagInclusionTimeout = "inclusion-timeout"
)

// GetBroadcastBatchCmd returns a command that broadcasts multiple signed
// transactions from files, one after another.
func GetBroadcastBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadcast-batch [tx-files...]",
		Short: "Broadcast multiple signed transactions",
		Long: `Broadcast multiple signed transactions in sequence. Each file must contain a
JSON-encoded signed transaction, as produced by the sign command.

With --sequential, each transaction must be included in a block before the
next one is sent. Without it, failures are reported and the batch continues.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sequential, _ := cmd.Flags().GetBool(flagSequential)
			inclusionTimeout, _ := cmd.Flags().GetDuration(flagInclusionTimeout)

			bar := progressbar.NewOptions(len(args),
				progressbar.OptionSetDescription("Broadcasting transactions..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
			)

			type batchResult struct {
				file string
				hash string
				err  error
			}
			results := make([]batchResult, 0, len(args))

			for _, txFile := range args {
				res, err := broadcastTxFile(clientCtx, txFile)
				if err != nil {
					bar.Add(1)
					results = append(results, batchResult{file: txFile, err: err})
					if sequential {
						bar.Finish()
						return fmt.Errorf("batch stopped at %s: %w", txFile, err)
					}
					continue
				}

				if sequential {
					if _, err := waitForInclusion(clientCtx, res.TxHash, inclusionTimeout); err != nil {
						bar.Finish()
						return fmt.Errorf("batch stopped at %s: %w", txFile, err)
					}
				}

				bar.Add(1)
				results = append(results, batchResult{file: txFile, hash: res.TxHash})
			}

			bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "\n=== Batch Results ===\n")
			for i, res := range results {
				if res.err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s: FAILED (%v)\n", i+1, res.file, res.err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s: %s\n", i+1, res.file, res.hash)
			}

			return nil
		},
	}

	cmd.Flags().Bool(flagSequential, false, "Wait for each transaction to be included in a block before sending the next")
	cmd.Flags().Duration(flagInclusionTimeout, 30*time.Second, "How long to wait for block inclusion in sequential mode")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// broadcastTxFile reads a JSON-encoded signed transaction and broadcasts it.
func broadcastTxFile(clientCtx client.Context, txFile string) (*sdk.TxResponse, error) {
	txBytes, err := os.ReadFile(txFile) // #nosec G304 - tx files are operator supplied
	if err != nil {
		return nil, fmt.Errorf("failed to read tx file: %w", err)
	}

	parsedTx, err := clientCtx.TxConfig.TxJSONDecoder()(txBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tx: %w", err)
	}

	encodedTx, err := clientCtx.TxConfig.TxEncoder()(parsedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tx: %w", err)
	}

	res, err := clientCtx.BroadcastTx(encodedTx)
	if err != nil {
		return nil, fmt.Errorf("broadcast failed: %w", err)
	}
	if res.Code != 0 {
		return nil, fmt.Errorf("tx rejected with code %d: %s", res.Code, res.RawLog)
	}

	return res, nil
}

// waitForInclusion polls the node until the transaction appears in a block.
func waitForInclusion(clientCtx client.Context, txHash string, timeout time.Duration) (*sdk.TxResponse, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := authtx.QueryTx(clientCtx, txHash)
		if err == nil {
			if res.Code != 0 {
				return nil, fmt.Errorf("tx %s failed in block with code %d: %s", txHash, res.Code, res.RawLog)
			}
			return res, nil
		}
		time.Sleep(1500 * time.Millisecond)
	}
	return nil, fmt.Errorf("tx %s not included within %s", txHash, timeout)
}
