package main

import (
	"fmt"
	"log/slog"

	"chainregistry/internal/app/provider"
	"chainregistry/internal/config"
	"chainregistry/internal/domain/entity"
	"chainregistry/internal/infrastructure/chainloader"
	networkdefinition "chainregistry/internal/infrastructure/network/definition"
	"chainregistry/internal/pkg/logger"
	"chainregistry/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "chainctl",
	Short:        "Inspect, validate, probe and import chain descriptors",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		zl, err := logger.Init(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cliLogger = zl
		return nil
	},
}

var cliLogger = zap.NewNop()

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file; probe and chainlist settings are read from it")
	rootCmd.PersistentFlags().String("overlay", "", "Directory of YAML/JSON descriptor overlays applied on top of the built-in set")
	rootCmd.PersistentFlags().Bool("no-builtins", false, "Start from an empty set instead of the built-in descriptors")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildRegistry assembles the registry the same way the server does, with
// --overlay and --no-builtins taking precedence over the config file.
func buildRegistry(cmd *cobra.Command) (*provider.ChainRegistry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	overlayDir := cfg.Registry.OverlayDir
	if cmd.Flags().Changed("overlay") {
		overlayDir, _ = cmd.Flags().GetString("overlay")
	}
	noBuiltins := cfg.Registry.DisableBuiltins
	if cmd.Flags().Changed("no-builtins") {
		noBuiltins, _ = cmd.Flags().GetBool("no-builtins")
	}

	var builtins []entity.ChainDescriptor
	if !noBuiltins {
		builtins = networkdefinition.All()
	}
	loader := chainloader.NewChainFileLoader(logger.NewAdapter(slog.Default(), "ChainFileLoader"))
	return provider.BuildRegistry(logger.NewAdapter(slog.Default(), "ChainRegistry"), builtins, loader, overlayDir)
}

// resolveChain accepts a decimal id, a 0x id, a network slug or a chain name.
func resolveChain(reg *provider.ChainRegistry, arg string) (entity.ChainDescriptor, error) {
	if id, err := utils.ParseChainID(arg); err == nil {
		return reg.MustGet(id)
	}
	if c, ok := reg.GetByNetwork(arg); ok {
		return c, nil
	}
	return entity.ChainDescriptor{}, fmt.Errorf("%w: %q", entity.ErrChainNotFound, arg)
}
