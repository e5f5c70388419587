package huffman

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

func init() {
	// Quiet unless the program configures its own levels.
	logging.SetLevel(logging.WARNING, "huffman")
}
