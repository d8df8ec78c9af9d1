// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input on stdin")

// isTerminal reports whether the command reads from an interactive
// terminal. Commands fall back to line input otherwise.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine reads one line from the command's input with the line ending
// and surrounding spaces removed.
func readLine(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" && errors.Is(err, io.EOF) {
		return "", errNoInput
	}
	return line, nil
}

// readLines reads n lines at once so that a single buffered reader owns
// the whole input.
func readLines(cmd *cobra.Command, n int) ([]string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := make([]string, 0, n)
	for range n {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" && errors.Is(err, io.EOF) {
			return nil, errNoInput
		}
		out = append(out, line)
	}
	return out, nil
}
