package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveMaster obtains the master secret from the one source the flags
// selected. The returned buffer is owned by the caller, who wipes it after
// generation.
func resolveMaster(cmd *cobra.Command, opts generateOptions) ([]byte, error) {
	switch {
	case opts.masterPrompt:
		return promptMaster(cmd.ErrOrStderr())
	case opts.masterStdin:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read master secret from stdin: %w", err)
		}
		return trimTrailingNewline(raw), nil
	default:
		return []byte(opts.master), nil
	}
}

// trimTrailingNewline strips one trailing newline sequence (any run of \n
// and \r at the end, but only when the input ends in \n). Leading and
// interior whitespace is part of the secret and is preserved.
func trimTrailingNewline(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		return b
	}
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

// promptMaster reads the secret from the controlling terminal without echo.
func promptMaster(errOut io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, usagef("--master-prompt requires an interactive terminal (use --master-stdin for piped input)")
	}
	fmt.Fprint(errOut, "Master: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(errOut)
	if err != nil {
		return nil, fmt.Errorf("read master secret from terminal: %w", err)
	}
	return secret, nil
}
