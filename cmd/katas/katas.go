package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"katas-server/pkg/bankocr"
	"katas-server/pkg/braces"
	"katas-server/pkg/compass"
	"katas-server/pkg/dominoes"
	"katas-server/pkg/ranges"
	"katas-server/pkg/rectangles"
	"katas-server/pkg/wraptext"
	"katas-server/pkg/zigzag"
)

func newCompassCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compass",
		Short: "List the 32 points of the compass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points := compass.Points()

			return opts.print(cmd, points, func(w io.Writer) {
				for _, p := range points {
					fmt.Fprintf(w, "%-4s %6.2f\n", p.Abbreviation, p.Azimuth)
				}
			})
		},
	}
}

type bracesResult struct {
	Input      string   `json:"input" yaml:"input"`
	Expansions []string `json:"expansions" yaml:"expansions"`
}

func newBracesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "braces [expression...]",
		Short:   "Expand brace expressions",
		Example: `  katas braces "thumbnail.{png,jp{e,}g}"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				s, err := opts.readInput(cmd)
				if err != nil {
					return err
				}

				inputs = nonEmptyLines(s)
			}

			results := make([]bracesResult, len(inputs))
			for i, input := range inputs {
				results[i] = bracesResult{Input: input, Expansions: braces.Expand(input)}
			}

			return opts.print(cmd, results, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintln(w, strings.Join(r.Expansions, " "))
				}
			})
		},
	}
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func newZigZagCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "zigzag n",
		Short: "Print an n×n zigzag matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			if limit := opts.cfg.ZigZag.MaxSize; n > limit {
				return fmt.Errorf("n cannot be greater than %d", limit)
			}

			matrix, err := zigzag.Matrix(n)
			if err != nil {
				return err
			}

			return opts.print(cmd, matrix, func(w io.Writer) {
				width := len(strconv.Itoa(n*n - 1))
				for _, row := range matrix {
					cells := make([]string, len(row))
					for i, v := range row {
						cells[i] = fmt.Sprintf("%*d", width, v)
					}

					fmt.Fprintln(w, strings.Join(cells, " "))
				}
			})
		},
	}
}

type dominoesResult struct {
	Dominoes   []dominoes.Tile `json:"dominoes" yaml:"dominoes"`
	CanMakeRow bool            `json:"canMakeRow" yaml:"canMakeRow"`
}

func newDominoesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "dominoes [tile...]",
		Short:   "Check whether the dominoes can be laid in a single row",
		Example: "  katas dominoes 0-1 1-1",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := opts.tokens(cmd, args)
			if err != nil {
				return err
			}

			tiles, err := dominoes.ParseTiles(strings.Join(tokens, ","))
			if err != nil {
				return err
			}

			result := dominoesResult{Dominoes: tiles, CanMakeRow: dominoes.CanMakeRow(tiles)}
			return opts.print(cmd, result, func(w io.Writer) {
				if result.CanMakeRow {
					fmt.Fprintln(w, "yes")
				} else {
					fmt.Fprintln(w, "no")
				}
			})
		},
	}
}

type rangesResult struct {
	Ranges string `json:"ranges" yaml:"ranges"`
}

func newRangesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "ranges [number...]",
		Short:   "Compress an ordered list of integers into ranges",
		Example: "  katas ranges 0 1 2 5 7 8 9",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := opts.tokens(cmd, args)
			if err != nil {
				return err
			}

			nums := make([]int, len(tokens))
			for i, token := range tokens {
				if nums[i], err = strconv.Atoi(token); err != nil {
					return err
				}
			}

			result := rangesResult{Ranges: ranges.Extract(nums)}
			return opts.print(cmd, result, func(w io.Writer) {
				fmt.Fprintln(w, result.Ranges)
			})
		},
	}
}

type bankAccountResult struct {
	Account int    `json:"account" yaml:"account"`
	Digits  string `json:"digits" yaml:"digits"`
}

func newBankAccountCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bank-account",
		Short: "Read an account number from a seven-segment scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, err := opts.readInput(cmd)
			if err != nil {
				return err
			}

			account, err := bankocr.ParseAccount(scan)
			if err != nil {
				return err
			}

			digits, _ := bankocr.ParseDigits(scan)

			result := bankAccountResult{Account: account, Digits: digits}
			return opts.print(cmd, result, func(w io.Writer) {
				fmt.Fprintln(w, result.Digits)
			})
		},
	}
}

type wrapResult struct {
	Lines []string `json:"lines" yaml:"lines"`
}

func newWrapCommand(opts *options) *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Wrap text at a column limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				s, err := opts.readInput(cmd)
				if err != nil {
					return err
				}

				text = strings.TrimRight(s, "\r\n")
			}

			if !cmd.Flags().Changed("columns") {
				columns = opts.cfg.Wrap.DefaultColumns
			}

			lines, err := wraptext.Wrap(text, columns)
			if err != nil {
				return err
			}

			return opts.print(cmd, wrapResult{Lines: lines}, func(w io.Writer) {
				for _, line := range lines {
					fmt.Fprintln(w, line)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "c", 0, "the column limit, defaults to the configured width")

	return cmd
}

type rectanglesResult struct {
	Rectangles []string `json:"rectangles" yaml:"rectangles"`
}

func newRectanglesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rectangles",
		Short: "Split an ASCII figure into its basic rectangles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			figure, err := opts.readInput(cmd)
			if err != nil {
				return err
			}

			result := rectanglesResult{Rectangles: rectangles.Decompose(figure)}
			return opts.print(cmd, result, func(w io.Writer) {
				fmt.Fprint(w, strings.Join(result.Rectangles, "\n"))
			})
		},
	}
}
