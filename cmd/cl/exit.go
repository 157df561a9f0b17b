package main

import (
	"errors"
	"fmt"
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func (e exitError) Unwrap() error {
	return e.err
}

// isSilentExit reports whether err only carries an exit code, because the
// command already reported the failure.
func isSilentExit(err error) bool {
	var exitErr exitError
	return errors.As(err, &exitErr) && exitErr.err == nil
}
