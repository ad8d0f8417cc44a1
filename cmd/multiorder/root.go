package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-multiorder/collections"
	"github.com/hasbyte1/go-multiorder/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "multiorder [flags] [values...]",
		Short:        "Print the traversal orders of an ordered multi-collection",
		Long:         "Builds a collection from the given values (duplicates kept, insertion order preserved), applies removals and prints the requested traversals.",
		SilenceUsage: true,
		RunE:         rootRun,
	}

	rootCmd.PersistentFlags().String("log-level", "info", `verbosity of logging ("trace", "debug", "info", "warn", "error")`)
	rootCmd.Flags().String("type", "int", `element type of the values ("int", "float", "string")`)
	rootCmd.Flags().String("name", collections.DefaultName, "display name of the collection")
	rootCmd.Flags().StringArray("remove", nil, "value to remove (every occurrence); may be repeated")
	rootCmd.Flags().StringSlice("order", nil, "traversal to print; may be repeated (default all six)")

	return rootCmd
}

func rootRun(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	logging.SetGlobalLogger(logging.NewConsoleLogger(os.Stderr, level))

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	return runDemo(cfg, args, ptermPrinter{})
}

func configFromFlags(cmd *cobra.Command) (demoConfig, error) {
	cfg := defaultDemoConfig()

	var err error
	if cfg.Type, err = cmd.Flags().GetString("type"); err != nil {
		return cfg, err
	}
	if cfg.Name, err = cmd.Flags().GetString("name"); err != nil {
		return cfg, err
	}
	remove, err := cmd.Flags().GetStringArray("remove")
	if err != nil {
		return cfg, err
	}
	if len(remove) > 0 {
		cfg.Remove = remove
	}
	names, err := cmd.Flags().GetStringSlice("order")
	if err != nil {
		return cfg, err
	}
	if len(names) > 0 {
		cfg.Orders = cfg.Orders[:0]
		for _, name := range names {
			o, err := collections.ParseOrder(name)
			if err != nil {
				return cfg, err
			}
			cfg.Orders = append(cfg.Orders, o)
		}
	}
	return cfg, nil
}
