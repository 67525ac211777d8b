package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wethinkt/codex-resume/internal/i18n"
)

// Quit is returned by Prompt when the user declines to pick a session.
const Quit = -1

// ErrInvalidSelection reports input that is neither a quit request nor a
// number in range. The prompt is never retried.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompt asks the user to pick one of n sessions and returns its 0-based
// index, or Quit for input starting with "q" or "Q".
func Prompt(in io.Reader, out io.Writer, n int) (int, error) {
	fmt.Fprint(out, i18n.Tf("resume.prompt", "\nResume which? (1-%d or 'q' to quit): ", n))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return 0, ErrInvalidSelection
		}
		return 0, fmt.Errorf("read selection: %w", err)
	}
	return ParseChoice(line, n)
}

// ParseChoice interprets one line of prompt input.
func ParseChoice(input string, n int) (int, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "q") || strings.HasPrefix(input, "Q") {
		return Quit, nil
	}
	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, input)
	}
	return num - 1, nil
}
