package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kletshuffle/klet"
)

var errNotEquivalent = errors.New("sequences differ in j-let content")

func (c *CLI) checkCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "check -k N A B",
		Short: "Report whether two sequences share all j-lets for 2 <= j <= k",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if k < 2 {
				return fmt.Errorf("k=%d, want >= 2", k)
			}
			var (
				a, b = strings.ToUpper(args[0]), strings.ToUpper(args[1])
				w    = cmd.OutOrStdout()
				ok   = true
			)
			for j := 2; j <= k; j++ {
				same := klet.Equal(a, b, j)
				ok = ok && same
				fmt.Fprintf(w, "%d-lets\t%s\n", j, verdict(same))
			}
			if !ok {
				return errNotEquivalent
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 2, "largest word length to compare")

	return cmd
}

func verdict(same bool) string {
	if same {
		return "equal"
	}
	return "differ"
}
