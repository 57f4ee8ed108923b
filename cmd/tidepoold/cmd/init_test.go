package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tmtypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/tidepool-zone/tidepool/app"
)

func setFlag(tb testing.TB, flagSet *pflag.FlagSet, name, value string) {
	tb.Helper()
	require.NoError(tb, flagSet.Set(name, value))
}

// TestInitCmd tests the basic initialization command
func TestInitCmd(t *testing.T) {
	tests := []struct {
		name         string
		moniker      string
		chainID      string
		overwrite    bool
		defaultDenom string
		wantErr      bool
	}{
		{
			name:         "valid init with chain ID",
			moniker:      "test-node",
			chainID:      "tidepool-mvp-1",
			overwrite:    false,
			defaultDenom: "utide",
			wantErr:      false,
		},
		{
			name:         "valid init without chain ID (auto-generate)",
			moniker:      "test-node-2",
			chainID:      "",
			overwrite:    false,
			defaultDenom: "utide",
			wantErr:      false,
		},
		{
			name:         "valid init with custom denom",
			moniker:      "test-node-3",
			chainID:      "tidepool-testnet-2",
			overwrite:    false,
			defaultDenom: "stake",
			wantErr:      false,
		},
		{
			name:         "valid init with overwrite",
			moniker:      "test-node-4",
			chainID:      "tidepool-testnet-3",
			overwrite:    true,
			defaultDenom: "utide",
			wantErr:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homeDir := t.TempDir()
			initSDKConfig()

			cmd := InitCmd(app.ModuleBasics, homeDir)
			require.NotNil(t, cmd)

			cmd.SetArgs([]string{tt.moniker})
			setFlag(t, cmd.Flags(), flags.FlagChainID, tt.chainID)
			setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
			setFlag(t, cmd.Flags(), flagOverwrite, "false")
			if tt.overwrite {
				setFlag(t, cmd.Flags(), flagOverwrite, "true")
			}
			if tt.defaultDenom != "" {
				setFlag(t, cmd.Flags(), flagDefaultDenom, tt.defaultDenom)
			}

			outBuf := new(bytes.Buffer)
			cmd.SetOut(outBuf)
			cmd.SetErr(outBuf)

			clientCtx := client.Context{}.
				WithCodec(app.MakeEncodingConfig().Codec).
				WithHomeDir(homeDir)

			ctx := server.NewDefaultContext()
			ctx.Config.SetRoot(homeDir)

			err := executeCommandWithContext(t, cmd, &clientCtx)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			genFile := filepath.Join(homeDir, "config", "genesis.json")
			require.FileExists(t, genFile, "genesis file should be created")

			genDoc, err := tmtypes.GenesisDocFromFile(genFile)
			require.NoError(t, err)
			require.NotNil(t, genDoc)

			if tt.chainID != "" {
				require.Equal(t, tt.chainID, genDoc.ChainID)
			} else {
				require.Contains(t, genDoc.ChainID, "test-chain-")
			}

			require.NotNil(t, genDoc.ConsensusParams)
			require.Equal(t, int64(2097152), genDoc.ConsensusParams.Block.MaxBytes)
			require.Equal(t, int64(100000000), genDoc.ConsensusParams.Block.MaxGas)

			// The default denom must flow into the staking bond denom
			var appState map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(genDoc.AppState, &appState))
			var stakingState struct {
				Params struct {
					BondDenom string `json:"bond_denom"`
				} `json:"params"`
			}
			require.NoError(t, json.Unmarshal(appState["staking"], &stakingState))
			require.Equal(t, tt.defaultDenom, stakingState.Params.BondDenom)

			configDir := filepath.Join(homeDir, "config")
			require.DirExists(t, configDir)

			dataDir := filepath.Join(homeDir, "data")
			require.DirExists(t, dataDir)

			nodeKeyFile := filepath.Join(configDir, "node_key.json")
			require.FileExists(t, nodeKeyFile)

			privValKeyFile := filepath.Join(configDir, "priv_validator_key.json")
			require.FileExists(t, privValKeyFile)
		})
	}
}

// TestInitCmdGenesisExists tests that init fails when genesis already exists without overwrite
func TestInitCmdGenesisExists(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)

	cmd.SetArgs([]string{"test-node"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-mvp-1")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
	setFlag(t, cmd.Flags(), flagOverwrite, "false")

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	// Second run without overwrite must refuse to clobber the genesis
	cmd2 := InitCmd(app.ModuleBasics, homeDir)
	cmd2.SetArgs([]string{"test-node-2"})
	setFlag(t, cmd2.Flags(), flags.FlagChainID, "tidepool-testnet-2")
	setFlag(t, cmd2.Flags(), flags.FlagHome, homeDir)
	setFlag(t, cmd2.Flags(), flagOverwrite, "false")

	outBuf2 := new(bytes.Buffer)
	cmd2.SetOut(outBuf2)
	cmd2.SetErr(outBuf2)

	err = executeCommandWithContext(t, cmd2, &clientCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "genesis.json file already exists")
}

// TestInitCmdWithOverwrite tests that init succeeds when overwrite flag is set
func TestInitCmdWithOverwrite(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"test-node"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-mvp-1")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
	setFlag(t, cmd.Flags(), flagOverwrite, "false")

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	genFile := filepath.Join(homeDir, "config", "genesis.json")
	genDoc1, err := tmtypes.GenesisDocFromFile(genFile)
	require.NoError(t, err)
	originalTime := genDoc1.GenesisTime

	time.Sleep(10 * time.Millisecond)

	cmd2 := InitCmd(app.ModuleBasics, homeDir)
	cmd2.SetArgs([]string{"test-node-overwrite"})
	setFlag(t, cmd2.Flags(), flags.FlagChainID, "tidepool-testnet-2")
	setFlag(t, cmd2.Flags(), flags.FlagHome, homeDir)
	setFlag(t, cmd2.Flags(), flagOverwrite, "true")

	outBuf2 := new(bytes.Buffer)
	cmd2.SetOut(outBuf2)

	err = executeCommandWithContext(t, cmd2, &clientCtx)
	require.NoError(t, err)

	genDoc2, err := tmtypes.GenesisDocFromFile(genFile)
	require.NoError(t, err)
	require.Equal(t, "tidepool-testnet-2", genDoc2.ChainID)
	require.NotEqual(t, originalTime, genDoc2.GenesisTime, "Genesis time should be different after overwrite")
}

// TestInitCmdConsensusParams tests that consensus params are set correctly
func TestInitCmdConsensusParams(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"test-validator"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	genFile := filepath.Join(homeDir, "config", "genesis.json")
	genDoc, err := tmtypes.GenesisDocFromFile(genFile)
	require.NoError(t, err)

	require.Equal(t, int64(2097152), genDoc.ConsensusParams.Block.MaxBytes)
	require.Equal(t, int64(100000000), genDoc.ConsensusParams.Block.MaxGas)
	require.Equal(t, int64(500000), genDoc.ConsensusParams.Evidence.MaxAgeNumBlocks)
	require.Equal(t, 21*24*time.Hour, genDoc.ConsensusParams.Evidence.MaxAgeDuration)
	require.Equal(t, int64(1048576), genDoc.ConsensusParams.Evidence.MaxBytes)
}

// TestInitCmdNodeKeyGeneration tests that node keys are generated correctly
func TestInitCmdNodeKeyGeneration(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"key-test-node"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	nodeKeyFile := filepath.Join(homeDir, "config", "node_key.json")
	require.FileExists(t, nodeKeyFile)

	nodeKeyBz, err := os.ReadFile(nodeKeyFile)
	require.NoError(t, err)

	var nodeKey map[string]interface{}
	require.NoError(t, json.Unmarshal(nodeKeyBz, &nodeKey))
	require.Contains(t, nodeKey, "priv_key")
}

// TestInitCmdPrivValidatorKeyGeneration tests that validator keys are generated correctly
func TestInitCmdPrivValidatorKeyGeneration(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"validator-key-test"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	privValKeyFile := filepath.Join(homeDir, "config", "priv_validator_key.json")
	require.FileExists(t, privValKeyFile)

	keyBz, err := os.ReadFile(privValKeyFile)
	require.NoError(t, err)

	var privValKey map[string]interface{}
	require.NoError(t, json.Unmarshal(keyBz, &privValKey))
	require.Contains(t, privValKey, "address")
	require.Contains(t, privValKey, "pub_key")
	require.Contains(t, privValKey, "priv_key")
}

// TestInitCmdRecoverDeterministic tests that recovering from the same mnemonic
// yields the same consensus key in two different homes.
func TestInitCmdRecoverDeterministic(t *testing.T) {
	initSDKConfig()

	const mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	consensusPubKey := func(t *testing.T) interface{} {
		t.Helper()
		homeDir := t.TempDir()

		cmd := InitCmd(app.ModuleBasics, homeDir)
		cmd.SetArgs([]string{"recover-node"})
		setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
		setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
		setFlag(t, cmd.Flags(), flagRecover, "true")
		cmd.SetIn(strings.NewReader(mnemonic + "\n"))

		outBuf := new(bytes.Buffer)
		cmd.SetOut(outBuf)

		clientCtx := client.Context{}.
			WithCodec(app.MakeEncodingConfig().Codec).
			WithHomeDir(homeDir)

		require.NoError(t, executeCommandWithContext(t, cmd, &clientCtx))

		keyBz, err := os.ReadFile(filepath.Join(homeDir, "config", "priv_validator_key.json"))
		require.NoError(t, err)

		var privValKey map[string]interface{}
		require.NoError(t, json.Unmarshal(keyBz, &privValKey))
		return privValKey["pub_key"]
	}

	first := consensusPubKey(t)
	second := consensusPubKey(t)
	require.Equal(t, first, second, "same mnemonic must derive the same consensus key")
}

// TestInitCmdAppStateNotEmpty tests that the genesis app state contains module defaults
func TestInitCmdAppStateNotEmpty(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"appstate-test"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	genFile := filepath.Join(homeDir, "config", "genesis.json")
	genDoc, err := tmtypes.GenesisDocFromFile(genFile)
	require.NoError(t, err)

	var appState map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(genDoc.AppState, &appState))

	for _, moduleName := range []string{"auth", "bank", "staking", "gov", "amm"} {
		require.Contains(t, appState, moduleName, "app state should contain %s module", moduleName)
		require.NotEmpty(t, appState[moduleName])
	}
}

// TestInitCmdOutput tests the command output messages
func TestInitCmdOutput(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"output-test-node"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "tidepool-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)

	clientCtx := client.Context{}.
		WithCodec(app.MakeEncodingConfig().Codec).
		WithHomeDir(homeDir)

	ctx := server.NewDefaultContext()
	ctx.Config.SetRoot(homeDir)

	err := executeCommandWithContext(t, cmd, &clientCtx)
	require.NoError(t, err)

	output := outBuf.String()
	require.Contains(t, output, "Successfully initialized chain configuration")
	require.Contains(t, output, "Chain ID: tidepool-testnet")
	require.Contains(t, output, "Moniker: output-test-node")
	require.Contains(t, output, "Node ID:")
	require.Contains(t, output, "Genesis file:")
}

// TestInitCmdFlagDefaults tests the default flag values
func TestInitCmdFlagDefaults(t *testing.T) {
	cmd := InitCmd(app.ModuleBasics, app.DefaultNodeHome)

	denomFlag := cmd.Flags().Lookup(flagDefaultDenom)
	require.NotNil(t, denomFlag)
	require.Equal(t, "utide", denomFlag.DefValue)

	overwriteFlag := cmd.Flags().Lookup(flagOverwrite)
	require.NotNil(t, overwriteFlag)
	require.Equal(t, "false", overwriteFlag.DefValue)

	recoverFlag := cmd.Flags().Lookup(flagRecover)
	require.NotNil(t, recoverFlag)
	require.Equal(t, "false", recoverFlag.DefValue)

	homeFlag := cmd.Flags().Lookup(flags.FlagHome)
	require.NotNil(t, homeFlag)
	require.Equal(t, app.DefaultNodeHome, homeFlag.DefValue)
}

// TestInitCmdCommandStructure tests the command metadata
func TestInitCmdCommandStructure(t *testing.T) {
	cmd := InitCmd(app.ModuleBasics, app.DefaultNodeHome)

	require.Equal(t, "init [moniker]", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotNil(t, cmd.Args)
	require.NotNil(t, cmd.RunE)

	// Exactly one moniker argument is accepted
	require.Error(t, cmd.Args(cmd, []string{}))
	require.NoError(t, cmd.Args(cmd, []string{"node"}))
	require.Error(t, cmd.Args(cmd, []string{"node", "extra"}))
}

// TestInitCmdLongDescription tests that the help text references the binary
func TestInitCmdLongDescription(t *testing.T) {
	cmd := InitCmd(app.ModuleBasics, app.DefaultNodeHome)
	require.Contains(t, cmd.Long, "tidepoold init")
}

// TestFileExists tests the fileExists helper
func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "exists.txt")
	require.NoError(t, os.WriteFile(existing, []byte("data"), 0o644))

	require.True(t, fileExists(existing))
	require.False(t, fileExists(filepath.Join(tmpDir, "missing.txt")))
}

func executeCommandWithContext(t testing.TB, cmd *cobra.Command, clientCtx *client.Context) error {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(clientCtx.HomeDir, "config"), 0o755); err != nil {
		return err
	}

	// Initialize encoding config to get all required fields
	encodingConfig := app.MakeEncodingConfig()

	// Ensure client context has all required fields
	*clientCtx = clientCtx.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithHomeDir(clientCtx.HomeDir)

	// Set a background context on the command if it doesn't have one
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}

	// Set client context in command
	_ = client.SetCmdClientContextHandler(*clientCtx, cmd)

	return cmd.Execute()
}

func BenchmarkInitCmd(b *testing.B) {
	initSDKConfig()

	for i := 0; i < b.N; i++ {
		homeDir := b.TempDir()

		cmd := InitCmd(app.ModuleBasics, homeDir)
		cmd.SetArgs([]string{"bench-node"})
		setFlag(b, cmd.Flags(), flags.FlagChainID, "tidepool-bench")
		setFlag(b, cmd.Flags(), flags.FlagHome, homeDir)

		outBuf := new(bytes.Buffer)
		cmd.SetOut(outBuf)

		clientCtx := client.Context{}.
			WithCodec(app.MakeEncodingConfig().Codec).
			WithHomeDir(homeDir)

		if err := executeCommandWithContext(b, cmd, &clientCtx); err != nil {
			b.Fatal(err)
		}
	}
}
