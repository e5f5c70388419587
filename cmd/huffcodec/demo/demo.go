package demo

import (
	"fmt"
	"path/filepath"

	huffman "github.com/chronos-tachyon/huffcodec"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("huffcodec")

// Message is encoded by the demo when no --message is given.
const Message = "this is a test message for huffman encoding and decoding"

var message string

var DemoCmd = &cobra.Command{
	Use:   "demo [dir]",
	Short: "Round-trip a message through files in a directory",
	Long:  "Encode a message into output.dat and dec_tab.txt inside the given directory, decode it back and print the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		payloadPath := filepath.Join(dir, "output.dat")
		tablePath := filepath.Join(dir, "dec_tab.txt")

		c := huffman.NewCodec(huffman.WithLogger(log))
		if err := c.EncodeToFile(message, payloadPath, tablePath); err != nil {
			return err
		}
		decoded, err := huffman.NewCodec(huffman.WithLogger(log)).DecodeFromFile(payloadPath, tablePath)
		if err != nil {
			return err
		}
		if decoded != message {
			return fmt.Errorf("round trip mismatch: got %q, want %q", decoded, message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), decoded)
		return nil
	},
}

func init() {
	DemoCmd.Flags().StringVarP(&message, "message", "m", Message, "Message to round-trip")
}
