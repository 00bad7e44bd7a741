package main

import (
	"fmt"
	"os"

	"github.com/peaqnetwork/peaq-network-node-sub001/cmd/issuance-sim/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
