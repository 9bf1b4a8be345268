package main

import (
	"fmt"
	"sort"
	"strings"

	"chainregistry/internal/domain/entity"
	"chainregistry/internal/pkg/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	showCmd.Flags().Bool("yaml", false, "Print the full descriptor as YAML")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:          "show <id|network>",
	Short:        "Show one chain descriptor",
	Args:         cobra.ExactArgs(1),
	RunE:         showE,
	SilenceUsage: true,
}

func showE(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}
	c, err := resolveChain(reg, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(c)
	}

	_, err = fmt.Fprint(out, describe(c))
	return err
}

func describe(c entity.ChainDescriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (chain %d, %s)\n", c.Name, c.ID, c.HexID())
	fmt.Fprintf(&b, "  network:   %s\n", c.Slug())
	fmt.Fprintf(&b, "  currency:  %s (%s, %d decimals)\n", c.NativeCurrency.Name, c.NativeCurrency.Symbol, c.NativeCurrency.Decimals)
	fmt.Fprintf(&b, "  testnet:   %t\n", c.IsTestnet())
	if c.SourceID != nil {
		fmt.Fprintf(&b, "  source:    %d\n", *c.SourceID)
	}
	if c.BlockTime != nil {
		fmt.Fprintf(&b, "  blockTime: %dms\n", *c.BlockTime)
	}
	if c.Fees != nil {
		if c.Fees.BaseFeeMultiplier != nil {
			fmt.Fprintf(&b, "  baseFeeMultiplier: %g\n", *c.Fees.BaseFeeMultiplier)
		}
		if c.Fees.DefaultPriorityFeeWei != nil {
			if gwei, err := utils.FormatUint64(*c.Fees.DefaultPriorityFeeWei, 9); err == nil {
				fmt.Fprintf(&b, "  defaultPriorityFee: %s gwei\n", gwei)
			}
		}
	}

	b.WriteString("  rpc:\n")
	for _, u := range c.HTTPURLs() {
		fmt.Fprintf(&b, "    %s\n", u)
	}
	for _, u := range c.WebSocketURLs() {
		fmt.Fprintf(&b, "    %s\n", u)
	}
	if ex, ok := c.DefaultExplorer(); ok {
		fmt.Fprintf(&b, "  explorer:  %s %s\n", ex.Name, ex.URL)
	}
	if names := c.ContractNames(); len(names) > 0 {
		b.WriteString("  contracts:\n")
		for _, name := range names {
			d := c.Contracts[name]
			if d.Address != "" {
				fmt.Fprintf(&b, "    %s: %s\n", name, d.Address)
			}
			for _, sid := range sortedSourceIDs(d.Sources) {
				fmt.Fprintf(&b, "    %s@%d: %s\n", name, sid, d.Sources[sid].Address)
			}
		}
	}
	if len(c.Formatters) > 0 {
		fmt.Fprintf(&b, "  formatters:  %s\n", strings.Join(c.Formatters, ", "))
	}
	if len(c.Serializers) > 0 {
		fmt.Fprintf(&b, "  serializers: %s\n", strings.Join(c.Serializers, ", "))
	}
	return b.String()
}

func sortedSourceIDs(m map[uint64]entity.Contract) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
