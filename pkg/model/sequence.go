// Sequence cleaning and alphabet validation.

package model

import (
	"fmt"
	"strings"
)

// InvalidSequenceError reports the first out-of-alphabet base found in a
// cleaned sequence. Pos is 1-based, counted on the cleaned string.
type InvalidSequenceError struct {
	Base byte
	Pos  int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid DNA sequence: base %q at position %d, sequence may contain only A, T, C, and G", e.Base, e.Pos)
}

// CleanSequence strips FASTA headers and whitespace from raw sequence text,
// uppercases it, and validates it against the {A,T,C,G} alphabet.
//
// Lines starting with '>' are treated as header metadata and dropped. The
// remaining lines are trimmed and joined with no separator, so multi-line
// sequence bodies become one contiguous string. An input of headers only
// cleans to the empty string, which is valid.
func CleanSequence(raw string) (string, error) {
	var b strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}

	seq := strings.ToUpper(b.String())

	for i := 0; i < len(seq); i++ {
		if !validBase(seq[i]) {
			return "", &InvalidSequenceError{Base: seq[i], Pos: i + 1}
		}
	}

	return seq, nil
}

// ValidSequence reports whether every byte of seq is in {A,T,C,G}.
// The empty sequence is valid.
func ValidSequence(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !validBase(seq[i]) {
			return false
		}
	}
	return true
}

func validBase(b byte) bool {
	switch b {
	case 'A', 'T', 'C', 'G':
		return true
	}
	return false
}
