package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/ame2020/ame"
	"github.com/dhamidi/ame2020/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ame")

// readMassTable parses the whole file, failing on the first bad line.
func readMassTable(path string) ([]ame.Nuclide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mass table: %w", err)
	}
	defer f.Close()

	nuclides, err := ame.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return nuclides, nil
}

func newConvertCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a mass table to JSON or tab-separated lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nuclides, err := readMassTable(args[0])
			if err != nil {
				return err
			}
			log.Infof("parsed %d nuclides from %s", len(nuclides), args[0])

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(nuclides); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")

	return cmd
}
