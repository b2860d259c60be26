// Package prompt reads PINs and passwords from the user without echoing
// them to the terminal.
package prompt

import (
	"bufio"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-mempass/internal/crypto"
)

// ErrMismatch is returned by [Prompter.ReadConfirmed] when the two entries
// differ.
var ErrMismatch = errors.New("entries do not match")

// Prompter writes prompts to Out and reads answers from In. When In is a
// terminal the answer is read with echo turned off; otherwise a single line
// is read, which keeps piped input and tests working.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	lines *bufio.Reader
}

// New returns a Prompter bound to the process standard streams. Prompts go
// to stderr so stdout stays clean for command output.
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr}
}

// ReadSecret prints label and reads one secret. The caller owns the returned
// slice and should wipe it after use.
func (p *Prompter) ReadSecret(label string) ([]byte, error) {
	fmt.Fprint(p.Out, label)

	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.Out)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret: %w", err)
		}
		return secret, nil
	}

	if p.lines == nil {
		p.lines = bufio.NewReader(p.In)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// ReadLine prints label and reads one line with echo on.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.Out, label)

	if p.lines == nil {
		p.lines = bufio.NewReader(p.In)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadConfirmed reads a secret twice and returns it if both entries match.
func (p *Prompter) ReadConfirmed(label, confirmLabel string) ([]byte, error) {
	first, err := p.ReadSecret(label)
	if err != nil {
		return nil, err
	}

	second, err := p.ReadSecret(confirmLabel)
	if err != nil {
		crypto.WipeBytes(first)
		return nil, err
	}
	defer crypto.WipeBytes(second)

	if subtle.ConstantTimeCompare(first, second) != 1 {
		crypto.WipeBytes(first)
		return nil, ErrMismatch
	}
	return first, nil
}

// FromEnv returns a copy of the secret stored in the environment variable
// name, or nil when it is unset. It lets scripts run mempass unattended.
func FromEnv(name string) []byte {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	return []byte(v)
}
