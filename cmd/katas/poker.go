package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"katas-server/internal/rng"
	"katas-server/pkg/poker"
)

type pokerResult struct {
	Hand  []string   `json:"hand" yaml:"hand"`
	Rank  poker.Rank `json:"rank" yaml:"rank"`
	Name  string     `json:"name" yaml:"name"`
	Label string     `json:"label" yaml:"label"`
}

func newPokerCommand(opts *options) *cobra.Command {
	var deal bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "poker [card...]",
		Short: "Rank a five-card poker hand",
		Example: strings.Join([]string{
			"  katas poker A♠ 4♠ 3♠ 5♠ 2♠",
			"  katas poker 10h,Jh,Qh,Kh,Ah",
			"  katas poker --deal --seed 42",
		}, "\n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hand []string
			if deal {
				var gen rng.Generator = rng.Crypto{}
				if seed != 0 {
					gen = rng.Seeded(seed)
				}

				cards, err := poker.Deal(gen)
				if err != nil {
					return err
				}

				hand = cards.Strings()
			} else {
				var err error
				if hand, err = opts.tokens(cmd, args); err != nil {
					return err
				}
			}

			rank, err := poker.Evaluate(hand)
			if err != nil {
				return err
			}

			logrus.WithField("rank", rank).Debug("evaluated hand")

			result := pokerResult{Hand: hand, Rank: rank, Name: rank.String(), Label: rank.Label()}
			return opts.print(cmd, result, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", strings.Join(hand, " "), rank.Label())
			})
		},
	}

	cmd.Flags().BoolVar(&deal, "deal", false, "deal a random hand instead of reading one")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible deal, 0 uses crypto/rand")

	return cmd
}

type compareResult struct {
	A      []string `json:"a" yaml:"a"`
	B      []string `json:"b" yaml:"b"`
	Result int      `json:"result" yaml:"result"`
}

func newCompareCommand(opts *options) *cobra.Command {
	var a, b string

	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare two poker hands",
		Example: `  katas compare --a "Ah,As,3d,7h,9c" --b "Kh,Ks,3c,7d,9d"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handA, handB := fields(a), fields(b)

			result, err := poker.Compare(handA, handB)
			if err != nil {
				return err
			}

			return opts.print(cmd, compareResult{A: handA, B: handB, Result: result}, func(w io.Writer) {
				switch result {
				case 1:
					fmt.Fprintln(w, "first hand wins")
				case -1:
					fmt.Fprintln(w, "second hand wins")
				default:
					fmt.Fprintln(w, "split pot")
				}
			})
		},
	}

	cmd.Flags().StringVar(&a, "a", "", "the first hand")
	cmd.Flags().StringVar(&b, "b", "", "the second hand")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}
