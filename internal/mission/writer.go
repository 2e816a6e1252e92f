package mission

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"martianrobots/internal/mars"
)

// Write prints one result per line.
func Write(w io.Writer, results []mars.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes results to path, or to stdout when path is "-".
// The file is replaced atomically so a failed write leaves no partial output.
func WriteFile(path string, results []mars.Result) error {
	if path == "-" {
		return Write(os.Stdout, results)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".martianrobots-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := Write(tmp, results); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
