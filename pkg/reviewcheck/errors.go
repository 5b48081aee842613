package reviewcheck

import "fmt"

// RunError represents a failure while processing a single file. The
// runner logs it and continues with the rest of the batch.
type RunError struct {
	Path  string
	Stage string // pipeline step that failed, e.g. "cells"
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("processing %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError.
func NewRunError(path, stage string, err error) *RunError {
	return &RunError{Path: path, Stage: stage, Err: err}
}
