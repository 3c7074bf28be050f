package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxToken bounds a single whitespace-separated token (a whole text line).
const maxToken = 1 << 24

// errInput marks malformed or truncated stdin.
var errInput = errors.New("cli: malformed input")

// tokens splits stdin into whitespace-separated words.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next word, or io.EOF at a clean end of input.
func (t *tokens) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// word is next with EOF treated as truncated input.
func (t *tokens) word(what string) (string, error) {
	w, err := t.next()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: missing %s", errInput, what)
	}

	return w, err
}

func (t *tokens) int(what string) (int, error) {
	w, err := t.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", errInput, what, w)
	}

	return n, nil
}

func (t *tokens) count(what string) (int, error) {
	n, err := t.int(what)
	if err == nil && n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", errInput, what, n)
	}

	return n, err
}

func (t *tokens) uint64(what string) (uint64, error) {
	w, err := t.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(w, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an unsigned integer", errInput, what, w)
	}

	return n, nil
}

// writeInts writes xs separated by single spaces and a final newline.
func writeInts(w io.Writer, xs []int) error {
	bw := bufio.NewWriter(w)
	for i, x := range xs {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(x)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}
