package encode

import (
	"fmt"
	"io"

	huffman "github.com/chronos-tachyon/huffcodec"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("huffcodec")

var text string

var EncodeCmd = &cobra.Command{
	Use:   "encode [payload] [table]",
	Short: "Compress text into a payload file and a code table file",
	Long:  "Compress the text given with --text, or read from standard input, into a packed payload file and a code table file.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadPath := args[0]
		tablePath := args[1]

		input := text
		if !cmd.Flags().Changed("text") {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading standard input: %w", err)
			}
			input = string(raw)
		}

		if err := huffman.NewCodec(huffman.WithLogger(log)).EncodeToFile(input, payloadPath, tablePath); err != nil {
			return fmt.Errorf("encoding into %s and %s: %w", payloadPath, tablePath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d bytes into %s with code table %s\n", len(input), payloadPath, tablePath)
		return nil
	},
}

func init() {
	EncodeCmd.Flags().StringVarP(&text, "text", "t", "", "Text to encode instead of standard input")
}
