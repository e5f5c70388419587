package decode

import (
	"fmt"

	huffman "github.com/chronos-tachyon/huffcodec"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("huffcodec")

var mode string

var DecodeCmd = &cobra.Command{
	Use:   "decode [payload] [table]",
	Short: "Decompress a payload file using its code table file",
	Long:  "Load the code table file, decode the packed payload file with it and print the original text.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadPath := args[0]
		tablePath := args[1]

		decodeMode, err := huffman.ParseDecodeMode(mode)
		if err != nil {
			return err
		}

		c := huffman.NewCodec(huffman.WithDecodeMode(decodeMode), huffman.WithLogger(log))
		text, err := c.DecodeFromFile(payloadPath, tablePath)
		if err != nil {
			return fmt.Errorf("decoding %s with %s: %w", payloadPath, tablePath, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	DecodeCmd.Flags().StringVarP(&mode, "mode", "m", huffman.ModeAuto.String(), "Decode mode: auto|tree|table")
}
