package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang-netconfig/internal/adapter/infrastructure/disk"
	"golang-netconfig/internal/adapter/infrastructure/file"
	"golang-netconfig/internal/adapter/infrastructure/mount"
	"golang-netconfig/internal/adapter/infrastructure/network"
	"golang-netconfig/internal/adapter/netconfig"
	"golang-netconfig/internal/pkg/config"
	"golang-netconfig/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write ifcfg files for all configured ports onto the install disk",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			os.Exit(1)
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting netconfig write")

		// Create context for graceful shutdown; an interrupt between probes
		// aborts the scan before the next mount attempt.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		writer := netconfig.NewWriter(
			network.NewManagerAdapter(),
			disk.NewManagerAdapter(),
			mount.NewManagerAdapter(),
			file.NewManagerAdapter(),
			cfg.Install.RootDevice,
			cfg.Install.ConfigPath,
		)

		if err := writer.WriteNetconfig(ctx, cfg.Ports); err != nil {
			logger.WithError(err).Error("Failed to write network configuration")
			os.Exit(1)
		}

		logger.WithField("port_count", len(cfg.Ports)).Info("Network configuration written")
	},
}

func init() {
	writeCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := writeCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(writeCmd)
}
