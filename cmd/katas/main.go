package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"katas-server/internal/config"
)

// Version is the CLI version
var Version = "v0.0.0-dev"

var exampleUsage = strings.TrimSpace(`
  katas poker A♠ 4♠ 3♠ 5♠ 2♠
  katas compare --a "Ah,As,3d,7h,9c" --b "Kh,Ks,3c,7d,9d"
  katas wrap --columns 26 < article.txt
  katas bank-account --file scan.txt --format json
`)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by every command
type options struct {
	format   string
	logLevel string
	file     string
	cfg      config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "katas",
		Short:        "Solve the katas from the command line",
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", Version, runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "o", formatText, "output format (text, yaml, json)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, defaults to the configured level")
	flags.StringVarP(&opts.file, "file", "f", "", "read input from a file instead of stdin")

	root.AddCommand(
		newPokerCommand(opts),
		newCompareCommand(opts),
		newCompassCommand(opts),
		newBracesCommand(opts),
		newZigZagCommand(opts),
		newDominoesCommand(opts),
		newRangesCommand(opts),
		newBankAccountCommand(opts),
		newWrapCommand(opts),
		newRectanglesCommand(opts),
	)

	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	o.cfg = config.Instance()

	logrus.SetOutput(cmd.ErrOrStderr())

	lvl := o.logLevel
	if lvl == "" {
		lvl = o.cfg.Log.Level
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	switch o.format {
	case formatText, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format: %s", o.format)
	}
}
