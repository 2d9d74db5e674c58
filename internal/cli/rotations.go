package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kletshuffle/kandel"
)

func (c *CLI) rotationsCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "rotations -k N SEQ",
		Short: "Print every rotation of a k-cyclic sequence",
		Long: `A sequence is k-cyclic when its first and last k-1 symbols agree. Each of
its rotations has the same k-let counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rots, err := kandel.Rotations(strings.ToUpper(args[0]), k)
			if err != nil {
				return err
			}
			for _, r := range rots {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			loggerFromContext(cmd.Context()).Debug("rotations", "k", k, "count", len(rots))
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 2, "word length")

	return cmd
}
