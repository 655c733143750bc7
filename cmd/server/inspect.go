package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/arpalette/pkg/arpalette"
	"github.com/yourusername/arpalette/store"
)

func runDescribe(cmd *cobra.Command, args []string) error {
	mod, err := arpalette.New()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		help, ok := mod.DescribeField(args[0])
		if !ok {
			return fmt.Errorf("unknown parameter %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), help)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE\tDEFAULT\tHELP")
	for _, f := range mod.Fields() {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", f.Key, f.Kind, f.Default(), f.Help)
	}
	return tw.Flush()
}

// runDump loads the stored configuration without booting, so nothing is
// written back, and prints what a save would produce.
func runDump(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	st, closeStore, err := store.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	h, err := newHost(st)
	if err != nil {
		return err
	}
	if err := h.Reload(ctx); err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(h.Config())
}
