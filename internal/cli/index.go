package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strkit/internal/logger"
	"github.com/katalvlaran/strkit/rollhash"
	"github.com/katalvlaran/strkit/trie"
)

// maxXorBits is the width of the integers read by the maxxor command.
const maxXorBits = 32

func (a *app) prefixStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix-stats",
		Short: "For each query count the inserted words that are its prefixes (input: n t, words, queries)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			n, err := in.count("word count")
			if err != nil {
				return err
			}
			q, err := in.count("query count")
			if err != nil {
				return err
			}
			tr := trie.New()
			for i := 0; i < n; i++ {
				w, err := in.word("word")
				if err != nil {
					return err
				}
				tr.Insert(w)
			}
			logger.Debug("trie built", "words", tr.Len(), "nodes", tr.Nodes())

			out := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < q; i++ {
				w, err := in.word("query")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tr.CountPrefixesOf(w))
			}

			return out.Flush()
		},
	}
}

func (a *app) maxXorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxxor",
		Short: "Print the maximum XOR of two of n non-negative integers (input: n, values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			n, err := in.count("value count")
			if err != nil {
				return err
			}
			values := make([]uint64, n)
			for i := range values {
				if values[i], err = in.uint64("value"); err != nil {
					return err
				}
			}
			var best uint64
			if n >= 2 {
				if best, err = trie.MaxXorPair(values, maxXorBits); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), best)

			return err
		},
	}
}

func (a *app) substrEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substr-eq",
		Short: "Answer Yes/No substring equality queries (input: S m, then m lines l1 r1 l2 r2, 1-based)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			s, err := in.word("string")
			if err != nil {
				return err
			}
			m, err := in.count("query count")
			if err != nil {
				return err
			}
			tbl, err := rollhash.BuildString(s, a.cfg.HashOptions()...)
			if err != nil {
				return err
			}
			logger.Debug("hash table built", "len", tbl.Len(), "ring", tbl.Ring())

			out := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < m; i++ {
				var q [4]int
				for k := range q {
					if q[k], err = in.int("query bound"); err != nil {
						return err
					}
				}
				eq, err := tbl.Equal(q[0]-1, q[1]-1, q[2]-1, q[3]-1)
				if err != nil {
					return fmt.Errorf("query %d: %w", i+1, err)
				}
				if eq {
					fmt.Fprintln(out, "Yes")
				} else {
					fmt.Fprintln(out, "No")
				}
			}

			return out.Flush()
		},
	}
}

func (a *app) repeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repeat",
		Short: "Print the longest substring of S that occurs at least twice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newTokens(cmd.InOrStdin()).word("string")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rollhash.LongestRepeated(s))

			return err
		},
	}
}

func (a *app) anagramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anagrams",
		Short: "Count distinct substrings of s2 that are permutations of s1 (input: s1 s2)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			needle, err := in.word("needle")
			if err != nil {
				return err
			}
			hay, err := in.word("haystack")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rollhash.CountDistinctAnagrams(needle, hay))

			return err
		},
	}
}
