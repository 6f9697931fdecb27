// Package commands implements the CLI commands for patchwork.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/patchwork/internal/app"
	"go.trai.ch/patchwork/internal/build"
	"go.trai.ch/zerr"
)

// configured marks commands that need the configuration and work queue.
const configured = "configured"

// CLI represents the command line interface for patchwork.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	workers    int
	verbose    bool

	progressFile string
}

// Application represents the application logic interface.
type Application interface {
	Configure(path string, overrides app.Overrides) error
	HashFiles(ctx context.Context, args []string, cached bool) ([]app.FileHash, error)
	Diff(ctx context.Context, fromPath, toPath string, w io.Writer) error
	Lookup(ctx context.Context, fromHex, toHex string) ([]byte, error)
	Apply(ctx context.Context, oldPath, patchPath string, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "patchwork",
		Short:         "Content hashing and binary patch caching for modlist installs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to patchwork.yaml (default $PATCHWORK_CONFIG or ./patchwork.yaml)")
	flags.IntVarP(&c.workers, "workers", "j", -1, "Number of pool workers, 0 for one per CPU")
	flags.StringVar(&c.progressFile, "progress-file", "", "Write a per-worker progress log to this file")
	flags.BoolVar(&c.verbose, "verbose", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newLookupCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[configured] == "" {
		return nil
	}

	var overrides app.Overrides
	if cmd.Flags().Changed("workers") {
		overrides.Workers = &c.workers
	}
	overrides.Verbose = c.verbose
	overrides.ProgressFile = c.progressFile

	return c.app.Configure(c.configPath, overrides)
}

func needsConfig() map[string]string {
	return map[string]string{configured: "true"}
}

// withOutput runs fn against the file named by path, or stdout when path is empty.
// The file is removed again when fn fails.
func withOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) (err error) {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}

	//nolint:gosec // Output path is provided by user
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(closeErr, "failed to close output file"), "path", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return fn(f)
}
