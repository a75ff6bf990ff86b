package model

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanSequence(t *testing.T) {

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain uppercase", "ATCGT", "ATCGT"},
		{"mixed case", "atcGTacg", "ATCGTACG"},
		{"fasta with header", ">chr1 test region\nATCG\nGGTA", "ATCGGGTA"},
		{"multiple headers", ">a\nAT\n>b\nCG", "ATCG"},
		{"headers only", ">only\n>headers here", ""},
		{"empty input", "", ""},
		{"surrounding whitespace", "  ATCG  \n\tGG\n", "ATCGGG"},
		{"windows line endings", ">h\r\nATCG\r\nTTAA\r\n", "ATCGTTAA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CleanSequence(tc.input)
			if err != nil {
				t.Fatalf("CleanSequence(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("CleanSequence(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanSequence_InvalidBases(t *testing.T) {

	cases := []struct {
		name     string
		input    string
		wantBase byte
	}{
		{"ambiguity code", "ATCGN", 'N'},
		{"digit", "AT1CG", '1'},
		{"protein residue", "ATCGX", 'X'},
		{"lowercase invalid", "atcgu", 'U'}, // uppercased before validation
		{"punctuation", "ATC-G", '-'},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CleanSequence(tc.input)
			if err == nil {
				t.Fatalf("CleanSequence(%q) should have failed", tc.input)
			}

			var seqErr *InvalidSequenceError
			if !errors.As(err, &seqErr) {
				t.Fatalf("expected *InvalidSequenceError, got %T", err)
			}
			if seqErr.Base != tc.wantBase {
				t.Errorf("offending base = %q, want %q", seqErr.Base, tc.wantBase)
			}
		})
	}
}

func TestCleanSequence_ErrorMessage(t *testing.T) {
	_, err := CleanSequence("ATCGN")
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	for _, want := range []string{"invalid DNA sequence", "A, T, C, and G"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should mention %q", msg, want)
		}
	}
}

func TestCleanSequence_Idempotent(t *testing.T) {
	inputs := []string{
		">header\natcg\nGGTA",
		"ATCGT",
		">only headers",
	}

	for _, input := range inputs {
		once, err := CleanSequence(input)
		if err != nil {
			t.Fatalf("first pass failed for %q: %v", input, err)
		}
		twice, err := CleanSequence(once)
		if err != nil {
			t.Fatalf("second pass failed for %q: %v", once, err)
		}
		if once != twice {
			t.Errorf("CleanSequence not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestValidSequence(t *testing.T) {
	if !ValidSequence("") {
		t.Error("empty sequence should be valid")
	}
	if !ValidSequence("ATCGATCG") {
		t.Error("ATCGATCG should be valid")
	}
	if ValidSequence("atcg") {
		t.Error("lowercase bases are not valid post-cleaning")
	}
	if ValidSequence("ATCGN") {
		t.Error("N is outside the alphabet")
	}
}
