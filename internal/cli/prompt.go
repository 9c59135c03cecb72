package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads operator input line by line. Prompts are written without a
// trailing newline so the cursor stays on the prompt line, matching normal
// terminal expectations.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// line prints the prompt and returns the next input line, trimmed.
// io.EOF is returned once input is exhausted; callers treat that as the end
// of the session.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	text, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// intLine prints the prompt and parses the next line as an integer.
// ok is false when the line is not an integer; err is non-nil only for
// input-stream failures.
func (p *prompter) intLine(prompt string) (n int, ok bool, err error) {
	text, err := p.line(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(text)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}
