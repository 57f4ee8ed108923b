package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/tidepool-zone/tidepool/app"
	"github.com/tidepool-zone/tidepool/cmd/tidepoold/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd(true)
	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
