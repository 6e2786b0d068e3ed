package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers line by line and writes prompts to out.
type Prompter struct {
	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// NewTerminalPrompter hides password input when stdin is a terminal.
func NewTerminalPrompter(in *os.File, out io.Writer) *Prompter {
	p := NewPrompter(in, out)
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(b), err
		}
	}
	return p
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints label and returns the trimmed answer.
func (p *Prompter) Ask(label string) (string, error) {
	p.Printf("%s", label)
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

// AskRequired repeats the prompt until the answer is not blank.
func (p *Prompter) AskRequired(label string) (string, error) {
	for {
		v, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		p.Println("This field cannot be empty.")
	}
}

// AskInt returns ok=false when the answer is not a whole number.
func (p *Prompter) AskInt(label string) (int64, bool, error) {
	v, err := p.Ask(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.ParseInt(v, 10, 64)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// AskYesNo treats only "y" and "yes" as consent.
func (p *Prompter) AskYesNo(label string) (bool, error) {
	v, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes", nil
}

func (p *Prompter) AskPassword(label string) (string, error) {
	if p.readPassword == nil {
		p.Printf("%s", label)
		return p.readLine()
	}
	p.Printf("%s", label)
	return p.readPassword()
}
