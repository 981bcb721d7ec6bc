package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword asks for a secret without echo when stdin is a terminal
// and reads a plain line otherwise, so secrets can be piped in.
func (a *App) promptPassword(prompt string) (string, error) {
	fmt.Fprint(a.errOut, prompt)

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}

	return a.readLine()
}

// readLine reads one line from stdin. A last line without a newline is
// returned as is.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirmPassword asks for a new secret twice unless it comes from env.
func (a *App) confirmPassword(env, prompt string) (string, error) {
	if v := a.getenv(env); v != "" {
		return v, nil
	}

	first, err := a.readPassword(prompt)
	if err != nil {
		return "", err
	}
	second, err := a.readPassword("Repeat " + strings.ToLower(prompt[:1]) + prompt[1:])
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordsDiffer
	}
	return first, nil
}

var errPasswordsDiffer = errors.New("passwords do not match")
