package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:         "diff <from> <to>",
		Short:       "Create the binary patch turning one file into another",
		Args:        cobra.ExactArgs(2),
		Annotations: needsConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd, output, func(w io.Writer) error {
				return c.app.Diff(cmd.Context(), args[0], args[1], w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the patch to a file instead of stdout")
	return cmd
}

func (c *CLI) newLookupCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:         "lookup <from-hash> <to-hash>",
		Short:       "Print a cached patch without computing it",
		Args:        cobra.ExactArgs(2),
		Annotations: needsConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.app.Lookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return withOutput(cmd, output, func(w io.Writer) error {
				if _, err := w.Write(data); err != nil {
					return zerr.Wrap(err, "failed to write patch")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the patch to a file instead of stdout")
	return cmd
}

func (c *CLI) newApplyCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:         "apply <old> <patch>",
		Short:       "Apply a binary patch to a file",
		Args:        cobra.ExactArgs(2),
		Annotations: needsConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd, output, func(w io.Writer) error {
				return c.app.Apply(cmd.Context(), args[0], args[1], w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")
	return cmd
}
