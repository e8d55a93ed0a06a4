// 29 Apr 2020

// Package common has the few things every command and most tests need.
package common

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for all the commands.
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	if err := f_tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file %v: %w", name, err)
	}
	return name, nil
}
