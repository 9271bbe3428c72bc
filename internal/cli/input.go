package cli

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
)

// stdinPath is the argument that selects standard input as a name list.
const stdinPath = "-"

// maxLineSize bounds a single line in a name list.
const maxLineSize = 1 << 20

// readNames reads a newline-delimited list of package names. Line endings
// ("\n" or "\r\n") are removed; every other byte, including surrounding
// whitespace, is kept. Blank lines become empty names.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// readNamesFile reads a name list from path, or from stdin when path is "-".
func readNamesFile(path string, stdin io.Reader) ([]string, error) {
	if path == stdinPath {
		names, err := readNames(stdin)
		if err != nil {
			return nil, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "read names from stdin")
		}
		return names, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, bserrors.Wrap(bserrors.ErrCodeFileNotFound, err, "could not open %s", path)
		}
		return nil, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "could not open %s", path)
	}
	defer f.Close()

	names, err := readNames(f)
	if err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return names, nil
}
