package cmd

import (
	"github.com/cosmos/cosmos-sdk/codec/address"
	genutilcli "github.com/cosmos/cosmos-sdk/x/genutil/client/cli"
	"github.com/spf13/cobra"

	"github.com/tidepool-zone/tidepool/app"
)

// AddGenesisAccountCmd returns the add-genesis-account command wired with the
// Tidepool account address codec.
func AddGenesisAccountCmd(defaultNodeHome string) *cobra.Command {
	return genutilcli.AddGenesisAccountCmd(defaultNodeHome, address.NewBech32Codec(app.Bech32PrefixAccAddr))
}
