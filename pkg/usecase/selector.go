package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// NoExclusion disables the exclusion check of ParseSelection
const NoExclusion = -1

// ParseSelection validates one line of user input as an environment index.
// The value must lie within [0, count) and differ from exclude; pass
// NoExclusion to disable the exclusion check.
func ParseSelection(input string, count, exclude int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, goerr.Wrap(err, "selection is not a number", goerr.V("input", input))
	}

	if v < 0 || v >= count {
		return 0, goerr.New("selection out of range",
			goerr.V("selection", v), goerr.V("count", count))
	}

	if exclude != NoExclusion && v == exclude {
		return 0, goerr.New("selection already taken", goerr.V("selection", v))
	}

	return v, nil
}

// Selector asks the user to pick two environments on the console. The
// reader and writer are injectable so the prompt loop is testable with
// scripted input.
type Selector struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewSelector creates a Selector reading selections from in and writing
// prompts to out
func NewSelector(in io.Reader, out io.Writer) interfaces.EnvironmentSelector {
	return &Selector{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Select picks two distinct environment indices. With exactly two
// environments both are selected in list order without prompting; with
// more the user is asked twice; with fewer there is nothing to compare.
func (s *Selector) Select(envs []model.Environment) (int, int, error) {
	count := len(envs)

	if count < 2 {
		return 0, 0, model.NewExitError(model.ExitTooFewEnvironments,
			fmt.Sprintf("release definition has %d environment(s), need at least 2 to compare", count))
	}

	if count == 2 {
		return 0, 1, nil
	}

	fmt.Fprintln(s.out, "Select environments to compare")
	index := color.New(color.FgCyan)
	for i, env := range envs {
		fmt.Fprintf(s.out, "%s] %s\n", index.Sprint(i), env.Name)
	}

	first, err := s.prompt("Select left environment for comparison", count, NoExclusion)
	if err != nil {
		return 0, 0, err
	}

	second, err := s.prompt("Select right environment for comparison", count, first)
	if err != nil {
		return 0, 0, err
	}

	return first, second, nil
}

// prompt asks for one index until the input is valid. There is no retry
// limit; the loop ends early only when the input stream is exhausted.
func (s *Selector) prompt(label string, count, exclude int) (int, error) {
	full := fmt.Sprintf("%s between %d and %d", label, 0, count-1)
	if exclude != NoExclusion {
		full += fmt.Sprintf(" not including %d", exclude)
	}

	for {
		fmt.Fprintf(s.out, "%s: ", full)

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return 0, goerr.Wrap(err, "failed to read selection")
			}
			return 0, goerr.New("input closed before a valid selection was made")
		}

		v, err := ParseSelection(s.scanner.Text(), count, exclude)
		if err != nil {
			continue
		}

		return v, nil
	}
}
