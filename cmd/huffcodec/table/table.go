package table

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/huffcodec"

	"github.com/spf13/cobra"
)

var TableCmd = &cobra.Command{
	Use:   "table [table]",
	Short: "Inspect a code table file",
	Long:  "Parse a code table file and list every code with the symbol it decodes to.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		f, err := os.Open(tablePath)
		if err != nil {
			return err
		}
		defer f.Close()

		ct, err := huffman.ReadCodeTable(f)
		if err != nil {
			return fmt.Errorf("parsing code table %s: %w", tablePath, err)
		}

		out := cmd.OutOrStdout()
		if quiet {
			fmt.Fprintf(out, "%d codes, %d .. %d bits\n", ct.Len(), ct.MinSize(), ct.MaxSize())
			return nil
		}
		_, err = ct.Dump(out)
		return err
	},
}

func init() {
	TableCmd.Flags().BoolP("quiet", "Q", false, "Only print a summary of the table")
}
