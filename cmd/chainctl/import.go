package main

import (
	"fmt"
	"time"

	"chainregistry/internal/infrastructure/chainloader"
	"chainregistry/internal/infrastructure/httpclient"
	"chainregistry/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func init() {
	importCmd.Flags().String("out", "", "YAML file to write the imported descriptors to")
	importCmd.Flags().String("ids", "", "Comma-separated chain ids to import (default: all)")
	importCmd.Flags().String("url", "", "Override the Chainlist feed URL")
	_ = importCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:          "import",
	Short:        "Import descriptors from the public Chainlist feed into an overlay file",
	Args:         cobra.NoArgs,
	RunE:         importE,
	SilenceUsage: true,
}

func importE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	rawIDs, _ := cmd.Flags().GetString("ids")
	ids, err := utils.ParseChainIDList(rawIDs)
	if err != nil {
		return err
	}

	url := cfg.Chainlist.URL
	if cmd.Flags().Changed("url") {
		url, _ = cmd.Flags().GetString("url")
	}
	cl := httpclient.NewChainlistClient(url, time.Duration(cfg.Chainlist.TimeoutMs)*time.Millisecond, cliLogger)

	chains, err := cl.FetchDescriptors(cmd.Context(), ids...)
	if err != nil {
		return err
	}
	if len(chains) == 0 {
		return fmt.Errorf("no chains imported from %s", url)
	}
	if err := chainloader.WriteFile(out, chains); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d chain descriptors to %s\n", len(chains), out)
	return err
}
