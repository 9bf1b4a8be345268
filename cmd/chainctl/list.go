package main

import (
	"fmt"
	"text/tabwriter"

	"chainregistry/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	listCmd.Flags().Bool("testnet", false, "Only list testnets (--testnet=false lists only mainnets)")
	listCmd.Flags().String("query", "", "Case-insensitive match on name, network or currency symbol")
	listCmd.Flags().Bool("json", false, "Print full descriptors as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List known chains",
	Args:         cobra.NoArgs,
	RunE:         listE,
	SilenceUsage: true,
}

func listE(cmd *cobra.Command, _ []string) error {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}

	var f entity.ChainFilter
	if cmd.Flags().Changed("testnet") {
		v, _ := cmd.Flags().GetBool("testnet")
		f.Testnet = &v
	}
	f.Query, _ = cmd.Flags().GetString("query")
	chains := reg.Filter(f)

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(chains, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode chains: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNETWORK\tNAME\tSYMBOL\tTESTNET\tDEFAULT RPC")
	for _, c := range chains {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%s\n", c.ID, c.Slug(), c.Name, c.NativeCurrency.Symbol, c.IsTestnet(), c.DefaultRPCURL())
	}
	return tw.Flush()
}
