package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bitsquat/pkg/bitflip"
	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
)

// flipCommand creates the flip command, which lists the bit-flip
// candidates of a single name without consulting any registry.
func (c *CLI) flipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flip <name>",
		Short: "List every single-bit flip of a package name",
		Long: `List every name reachable by flipping one bit of one byte of <name>.
Flips that produce invalid UTF-8 are omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return bserrors.New(bserrors.ErrCodeInvalidInput, "name cannot be empty")
			}
			writeCandidates(cmd.OutOrStdout(), bitflip.Candidates(args[0]))
			return nil
		},
	}
}

func writeCandidates(w io.Writer, cands []bitflip.Candidate) {
	for _, cand := range cands {
		fmt.Fprintf(w, "%s  %s\n", StyleNumber.Render(flipPosition(cand.Index, cand.Bit)), StyleValue.Render(cand.Flipped))
	}
}

// flipPosition formats the byte index and bit mask of a flip.
func flipPosition(index int, bit uint) string {
	return fmt.Sprintf("[byte %d, mask 0x%02x]", index, byte(1)<<bit)
}
