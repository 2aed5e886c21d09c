package main

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/try-continue/seqerr"
)

func TestEvensCount(t *testing.T) {
	words := seqerr.Lift(
		slices.Values([]string{"1", "2", "3", "24", "28"}),
	)

	n, err := evens(words, false)
	if err != nil {
		t.Fatalf("evens() returned error: %v", err)
	}

	if n != 3 {
		t.Errorf("expected count of 3 but got %d", n)
	}
}

func TestEvensSum(t *testing.T) {
	words := seqerr.Lift(
		slices.Values([]string{"1", "2", "3", "24", "28"}),
	)

	n, err := evens(words, true)
	if err != nil {
		t.Fatalf("evens() returned error: %v", err)
	}

	if n != 54 {
		t.Errorf("expected sum of 54 but got %d", n)
	}
}

func TestEvensBadWord(t *testing.T) {
	words := seqerr.Lift(
		slices.Values([]string{"1", "2", "three", "-4", "28"}),
	)

	_, err := evens(words, false)

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected a *strconv.NumError but got %v", err)
	}

	if numErr.Num != "three" {
		t.Errorf("expected parse failure for %q but got %q", "three", numErr.Num)
	}
}

func TestEvensReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	words := seqerr.Append(
		seqerr.Lift(slices.Values([]string{"2", "4"})),
		readErr,
	)

	_, err := evens(words, false)
	if !errors.Is(err, readErr) {
		t.Errorf("expected read error %v but got %v", readErr, err)
	}
}

func TestReadLines(t *testing.T) {
	r := strings.NewReader("1\n\n  2  \n3\n")

	var lines []string
	for line, err := range readLines(r) {
		if err != nil {
			t.Fatalf("readLines() yielded error: %v", err)
		}
		lines = append(lines, line)
	}

	expected := []string{"1", "2", "3"}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("lines are wrong:\n%s", diff)
	}
}

func TestReadLinesError(t *testing.T) {
	readErr := errors.New("read failed")
	r := iotest.ErrReader(readErr)

	var last error
	for _, err := range readLines(r) {
		last = err
	}

	if !errors.Is(last, readErr) {
		t.Errorf("expected read error %v but got %v", readErr, last)
	}
}
