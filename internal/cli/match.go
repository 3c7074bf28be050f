package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strkit/internal/logger"
	"github.com/katalvlaran/strkit/kmp"
	"github.com/katalvlaran/strkit/zarray"
)

// lowercase is the password alphabet.
const lowercase = "abcdefghijklmnopqrstuvwxyz"

// dangerRun is the streak length that makes a binary line-up dangerous.
const dangerRun = 7

// readSearch parses "n P m S": pattern length, pattern, text length, text.
// The declared lengths must match the words read.
func readSearch(in *tokens) (pattern, text string, err error) {
	n, err := in.count("pattern length")
	if err != nil {
		return "", "", err
	}
	if pattern, err = in.word("pattern"); err != nil {
		return "", "", err
	}
	m, err := in.count("text length")
	if err != nil {
		return "", "", err
	}
	if text, err = in.word("text"); err != nil {
		return "", "", err
	}
	if len(pattern) != n || len(text) != m {
		return "", "", fmt.Errorf("%w: declared lengths %d/%d, read %d/%d", errInput, n, m, len(pattern), len(text))
	}

	return pattern, text, nil
}

func (a *app) kmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kmp",
		Short: "Print every start of P in S (input: n P m S) using KMP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pattern, text, err := readSearch(newTokens(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			pos, err := kmp.FindAllString(text, pattern)
			if err != nil {
				return err
			}
			logger.Debug("kmp search done", "pattern_len", len(pattern), "text_len", len(text), "matches", len(pos))

			if len(pos) == 0 {
				return nil
			}

			return writeInts(cmd.OutOrStdout(), pos)
		},
	}
}

func (a *app) zsearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zsearch",
		Short: "Print every start of P in S (input: n P m S) using the Z-algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pattern, text, err := readSearch(newTokens(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			pos, err := zarray.FindAllString(text, pattern)
			if err != nil {
				return err
			}
			logger.Debug("z search done", "pattern_len", len(pattern), "text_len", len(text), "matches", len(pos))

			if len(pos) == 0 {
				return nil
			}

			return writeInts(cmd.OutOrStdout(), pos)
		},
	}
}

func (a *app) stripsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strips",
		Short: "For each \"text pattern\" pair until text '#', print non-overlapping match counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			out := bufio.NewWriter(cmd.OutOrStdout())
			cases := 0
			for {
				text, err := in.next()
				if errors.Is(err, io.EOF) || text == "#" {
					break
				}
				if err != nil {
					return err
				}
				pattern, err := in.word("pattern")
				if err != nil {
					return err
				}
				cnt, err := kmp.CountNonOverlappingString(text, pattern)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, cnt)
				cases++
			}
			logger.Debug("strips done", "cases", cases)

			return out.Flush()
		},
	}
}

func (a *app) passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Count length-n lowercase strings avoiding T (input: n T)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			n, err := in.count("password length")
			if err != nil {
				return err
			}
			forbidden, err := in.word("forbidden substring")
			if err != nil {
				return err
			}
			res, err := kmp.CountAvoiding(n, forbidden, []byte(lowercase), a.cfg.PasswordModulus)
			if err != nil {
				return err
			}
			logger.Debug("password count done", "n", n, "forbidden_len", len(forbidden), "modulus", a.cfg.PasswordModulus)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)

			return err
		},
	}
}

func (a *app) periodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "period",
		Short: "Print the area of the smallest repeating tile (input: rows cols, then rows)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			rows, err := in.count("row count")
			if err != nil {
				return err
			}
			cols, err := in.count("column count")
			if err != nil {
				return err
			}
			grid := make([]string, rows)
			for i := range grid {
				if grid[i], err = in.word("grid row"); err != nil {
					return err
				}
				if len(grid[i]) != cols {
					return fmt.Errorf("%w: row %d has %d columns, want %d", errInput, i, len(grid[i]), cols)
				}
			}
			area, err := kmp.MinRepeatingArea(grid)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), area)

			return err
		},
	}
}

func (a *app) borderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "border",
		Short: "For t strings print the longest border also found inside, or \"not exist\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := newTokens(cmd.InOrStdin())
			t, err := in.count("test count")
			if err != nil {
				return err
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < t; i++ {
				s, err := in.word("string")
				if err != nil {
					return err
				}
				if b, ok := kmp.LongestRecurringBorder(s); ok {
					fmt.Fprintln(out, b)
				} else {
					fmt.Fprintln(out, "not exist")
				}
			}

			return out.Flush()
		},
	}
}

func (a *app) dangerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "danger",
		Short: "Print YES if a 0/1 string holds 7 equal symbols in a row, otherwise NO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newTokens(cmd.InOrStdin()).word("line-up")
			if err != nil {
				return err
			}
			answer := "NO"
			for _, c := range []string{"0", "1"} {
				tbl, err := kmp.BuildString(strings.Repeat(c, dangerRun))
				if err != nil {
					return err
				}
				if tbl.Contains([]byte(s)) {
					answer = "YES"
					break
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)

			return err
		},
	}
}
