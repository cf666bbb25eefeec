package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// stdoutName selects the standard output as destination.
const stdoutName = "-"

// writeOutput runs render against the destination file, or stdout for "-".
// A destination file is removed again when rendering or closing it fails.
func writeOutput(dst string, render func(w io.Writer) error) error {
	if dst == stdoutName {
		return render(os.Stdout)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create destination: %w", err)
	}
	err = render(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(dst); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return fmt.Errorf("%w (unable to remove %s: %v)", err, dst, rerr)
		}
		return err
	}
	return nil
}
