package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

type hashLine struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "hash <files...>",
		Short:       "Print the content hash of files, using .hash sidecars",
		Args:        cobra.MinimumNArgs(1),
		Annotations: needsConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			asJSON, _ := cmd.Flags().GetBool("json")

			hashes, err := c.app.HashFiles(cmd.Context(), args, !noCache)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, fh := range hashes {
				if asJSON {
					if err := enc.Encode(hashLine{Path: fh.Path, Hash: fh.Hash.Hex()}); err != nil {
						return zerr.Wrap(err, "failed to encode hash")
					}
					continue
				}
				_, _ = fmt.Fprintf(out, "%s  %s\n", fh.Hash, fh.Path)
			}
			return nil
		},
	}

	cmd.Flags().Bool("no-cache", false, "Always read files and never write sidecars")
	cmd.Flags().Bool("json", false, "Print one JSON object per file")

	return cmd
}
