package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// getPassword returns flagValue when set. Otherwise it prompts on w and reads
// without echo from a terminal, or reads one line from in.
func getPassword(flagValue string, in io.Reader, w io.Writer) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}

	if isTerminal() {
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
