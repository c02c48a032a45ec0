package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads interactive input line by line. The confirmation prompt
// blocks with no timeout; only the literal "y" affirms.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and returns one trimmed input line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm implements workflow.Confirmer. Any input other than an explicit
// affirmative cancels.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
