package main

import (
	"os"

	decode "github.com/chronos-tachyon/huffcodec/cmd/huffcodec/decode"
	demo "github.com/chronos-tachyon/huffcodec/cmd/huffcodec/demo"
	encode "github.com/chronos-tachyon/huffcodec/cmd/huffcodec/encode"
	table "github.com/chronos-tachyon/huffcodec/cmd/huffcodec/table"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

const progName = "huffcodec"

var (
	debugLogging      bool
	leveledLogBackend logging.LeveledBackend
)

var rootCmd = &cobra.Command{
	Use:   progName,
	Short: "Huffman text compressor",
	Long:  "huffcodec compresses 7-bit text with a Huffman code, storing the packed payload and its code table as two files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugLogging {
			leveledLogBackend.SetLevel(logging.DEBUG, "")
		}
	},
	SilenceUsage: true,
}

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	rootCmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "Enable debug logging")
	rootCmd.AddCommand(encode.EncodeCmd)
	rootCmd.AddCommand(decode.DecodeCmd)
	rootCmd.AddCommand(table.TableCmd)
	rootCmd.AddCommand(demo.DemoCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
