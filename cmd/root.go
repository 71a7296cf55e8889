package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-netconfig",
	Short: "golang-netconfig writes legacy ifcfg files onto a freshly installed disk",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
