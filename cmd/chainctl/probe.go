package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"chainregistry/internal/app/service"
	"chainregistry/internal/infrastructure/network/client"
	"chainregistry/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:          "probe <id|network>",
	Short:        "Probe every RPC endpoint of a chain",
	Args:         cobra.ExactArgs(1),
	RunE:         probeE,
	SilenceUsage: true,
}

func probeE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}
	c, err := resolveChain(reg, args[0])
	if err != nil {
		return err
	}

	prober := client.NewEVMProber(client.ProberConfig{
		ConnectionTimeout: time.Duration(cfg.Probe.ConnectTimeoutMs) * time.Millisecond,
		CallTimeout:       time.Duration(cfg.Probe.CallTimeoutMs) * time.Millisecond,
		MaxRetries:        cfg.Probe.MaxRetries,
		RetryDelay:        time.Duration(cfg.Probe.RetryDelayMs) * time.Millisecond,
		RatePerSecond:     cfg.Probe.RateLimitPerSecond,
		Burst:             cfg.Probe.Burst,
	}, cliLogger)
	defer prober.Close()

	health := service.NewHealthService(reg, prober, logger.NewAdapter(slog.Default(), "HealthService"), service.HealthConfig{
		CacheTTL:      time.Minute,
		MaxConcurrent: cfg.Probe.MaxConcurrent,
	})

	statuses, err := health.CheckChain(cmd.Context(), c.ID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "URL\tHEALTHY\tLATENCY\tBLOCK\tERROR")
	healthy := 0
	for _, st := range statuses {
		if st.Healthy {
			healthy++
		}
		fmt.Fprintf(tw, "%s\t%t\t%dms\t%d\t%s\n", st.URL, st.Healthy, st.LatencyMs, st.BlockNumber, st.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if healthy == 0 {
		return fmt.Errorf("no healthy RPC endpoint for %s (%d)", c.Name, c.ID)
	}
	return nil
}
