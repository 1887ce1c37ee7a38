package main

import (
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/freelist/internal/perf"
	"github.com/pavanmanishd/freelist/internal/workload"
)

func init() {
	rootCmd.AddCommand(newEventsCmd(), newWorkloadsCmd())
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the counter events that can be requested",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if jsonOut {
				names := make([]string, 0)
				for _, ev := range perf.Events() {
					names = append(names, ev.String())
				}
				return printJSON(out, names)
			}
			for _, ev := range perf.Events() {
				printInfo(out, "%s\n", ev)
			}
			return nil
		},
	}
}

func newWorkloadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List the available workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if jsonOut {
				return printJSON(out, workload.Names())
			}
			for _, w := range workload.All() {
				printInfo(out, "%-22s %s\n", w.Name, w.Description)
			}
			return nil
		},
	}
}
