package main

import (
	"fmt"

	"github.com/facebookgo/inject"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tryanzu/orders/board/imports"
	"github.com/tryanzu/orders/core/shell"
	"github.com/tryanzu/orders/deps"
	"github.com/tryanzu/orders/modules/api"
)

var log = logging.MustGetLogger("orders")

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "orders",
		Short:         "Orders import pipeline and read API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(apiCmd(), importCmd(), shellCmd())
	return rootCmd
}

func apiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api [port]",
		Short: "Starts API web server",
		Long: `Starts API web server listening
in the specified port or the configured http.port`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := deps.Bootstrap(deps.Default...)
			if err != nil {
				return fail(cmd, "api", err)
			}
			defer container.Close()

			// Graph main object (used to inject dependencies)
			var g inject.Graph
			err = g.Provide(
				&inject.Object{Value: container.Config(), Complete: true},
				&inject.Object{Value: container.Errors(), Complete: true},
				&inject.Object{Value: &container, Complete: true},
			)
			if err != nil {
				return fail(cmd, "api", err)
			}

			var module api.Module
			if err := module.Populate(&g); err != nil {
				return fail(cmd, "api", err)
			}

			port := container.Config().UString("http.port", ":3200")
			if len(args) == 1 {
				port = args[0]
			}
			if err := module.Run(port); err != nil {
				return fail(cmd, "api", err)
			}
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports the orders feed",
		Long: `Imports customers, products and orders from a JSON
feed file, relative to application.root unless absolute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ignitors := []deps.Ignitor{deps.IgniteConfig, deps.IgniteLogger, deps.IgniteSentry, deps.IgniteMongoDB}
			if dryRun {
				ignitors = []deps.Ignitor{deps.IgniteConfig, deps.IgniteLogger, deps.IgniteSentry, deps.IgniteMemory}
			}
			container, err := deps.Bootstrap(ignitors...)
			if err != nil {
				return fail(cmd, "import", err)
			}
			defer container.Close()

			path := imports.ResolvePath(container.Config().UString("application.root", "."), file)
			summary, err := imports.RunFile(container, path)
			if err != nil {
				container.Errors().CaptureError(err, map[string]string{"command": "import", "file": path})
				return fail(cmd, "import", err)
			}

			mode := "imported"
			if dryRun {
				mode = "validated (dry run)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records %s: %d customers, %d products, %d orders\n",
				summary.Records, mode, summary.Customers, summary.Products, summary.Orders)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", imports.DefaultFile, "feed file to import")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the import against an in-memory store")
	return cmd
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [command args...]",
		Short: "Starts interactive shell",
		Long: `Starts the maintenance shell, or runs a single
shell command when one is given`,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := deps.Bootstrap(deps.IgniteConfig, deps.IgniteLogger, deps.IgniteSentry, deps.IgniteMongoDB)
			if err != nil {
				return fail(cmd, "shell", err)
			}
			defer container.Close()

			if err := shell.RunShell(container, args...); err != nil {
				return fail(cmd, "shell", err)
			}
			return nil
		},
	}
}

// fail prints the one line error summary.
func fail(cmd *cobra.Command, name string, err error) error {
	log.Errorf("%s failed	err=%v", name, err)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s failed: %v\n", name, err)
	return err
}

