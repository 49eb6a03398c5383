package utils

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the input path that means "read standard input".
const StdinPath = "-"

// ReadInput returns the whole round document at path, or all of stdin for "-".
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
