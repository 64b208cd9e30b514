package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sectionizer/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.DefaultRequirements(cfg))

			out := cmd.OutOrStdout()
			if useTable() {
				headers := []string{"Dependency", "Command", "Available", "Detail"}
				rows := make([][]string, 0, len(statuses))
				for _, status := range statuses {
					rows = append(rows, []string{
						status.Name,
						status.Command,
						availability(status),
						statusDetail(status),
					})
				}
				fmt.Fprintln(out, renderTable(headers, rows))
			} else {
				for _, status := range statuses {
					fmt.Fprintf(out, "%s (%s): %s %s\n", status.Name, status.Command, availability(status), statusDetail(status))
				}
			}

			for _, status := range statuses {
				if !status.Available && !status.Optional {
					return fmt.Errorf("required dependency %s is unavailable", status.Name)
				}
			}
			return nil
		},
	}
}

func useTable() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func availability(status deps.Status) string {
	if status.Available {
		return "yes"
	}
	if status.Optional {
		return "no (optional)"
	}
	return "no"
}

func statusDetail(status deps.Status) string {
	if status.Detail != "" {
		return status.Detail
	}
	return status.Description
}
