// Counts the even numbers among its inputs.
//
// A small demonstration of the try-continue library: reading and parsing can
// both fail on any input, but the counting logic below works on a plain
// sequence of ints and never sees an error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	trycontinue "github.com/sinclairtarget/try-continue"
	"github.com/sinclairtarget/try-continue/internal/pretty"
	"github.com/sinclairtarget/try-continue/seqerr"
)

func main() {
	flagSet := flag.NewFlagSet("evens", flag.ExitOnError)

	verboseFlag := flagSet.Bool("v", false, "Enables debug logging")
	sumFlag := flagSet.Bool("sum", false, "Print the sum of the even numbers instead of the count")

	flagSet.Usage = func() {
		fmt.Println("Usage: evens [-v] [-sum] [numbers...]")
		fmt.Println("evens counts the even numbers among its inputs")

		fmt.Println()
		fmt.Println("Numbers are read from the arguments, or from stdin one per line.")

		fmt.Println()
		fmt.Println("Options:")
		flagSet.PrintDefaults()
	}

	flagSet.Parse(os.Args[1:])

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	if err := run(flagSet.Args(), *sumFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(args []string, sum bool) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"evens\": %w", err)
		}
	}()

	logger().Debug("called run()", "args", args, "sum", sum)

	words := seqerr.Lift(slices.Values(args))

	if len(args) == 0 {
		if pretty.InteractiveTerminal(os.Stdin) {
			fmt.Fprintln(
				os.Stderr,
				"Reading numbers from stdin, one per line. End with ctrl-d.",
			)
		}

		words = readLines(os.Stdin)
	}

	n, err := evens(words, sum)
	if err != nil {
		return err
	}

	fmt.Println(n)
	return nil
}

// Parses each word as an integer and folds over the even ones.
//
// The fold never sees an error; the first failed read or unparseable word
// ends the sequence and surfaces here as the returned error.
func evens(words iter.Seq2[string, error], sum bool) (int, error) {
	read := trycontinue.Wrap(words)
	numbers := seqerr.Map(read.Values(), func(w string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(w))
	})

	n, err := trycontinue.TryContinue(
		numbers,
		func(nums iter.Seq[int]) int {
			total := 0
			for n := range nums {
				if n%2 == 0 {
					if sum {
						total += n
					} else {
						total += 1
					}
				}
			}
			return total
		},
	)
	if err != nil {
		return 0, err
	}

	// A failed read truncates the word sequence rather than failing the
	// parse stage; check for it before trusting the fold result.
	if err := read.Err(); err != nil {
		return 0, err
	}

	return n, nil
}

// Returns a single-use iterator over the non-blank lines of r. A read error
// surfaces as a final failed element.
func readLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if !yield(line, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("error while scanning: %w", err))
		}
	}
}

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
