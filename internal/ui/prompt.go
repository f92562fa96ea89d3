package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when confirmation is needed but there is no
// terminal to ask on.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal; rerun with --force")

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Prompt asks [y/N] questions before state-changing operations
type Prompt struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool

	reader *bufio.Reader
	tty    io.Closer // set when the prompt opened /dev/tty itself
}

// NewPrompt builds a prompt on the given streams. Pipeline input occupies
// stdin, so the prompt reads from the controlling terminal when one exists.
func NewPrompt(in *os.File, out io.Writer) *Prompt {
	if IsTerminal(in) {
		return &Prompt{In: in, Out: out, Interactive: true}
	}
	if tty, err := os.Open("/dev/tty"); err == nil {
		return &Prompt{In: tty, Out: out, Interactive: true, tty: tty}
	}
	return &Prompt{In: in, Out: out}
}

// Close releases the terminal the prompt opened, if any
func (p *Prompt) Close() error {
	if p.tty == nil {
		return nil
	}
	err := p.tty.Close()
	p.tty = nil
	return err
}

// Confirm implements invoke.Confirmer
func (p *Prompt) Confirm(operation, target string) (bool, error) {
	if !p.Interactive {
		return false, ErrNotInteractive
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	fmt.Fprintf(p.Out, "%s %s on %s? [y/N]: ",
		WarnStyle.Render("Proceed with"), NameStyle.Render(operation), IDStyle.Render(target))

	response, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}
