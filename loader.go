package confmap

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadReader reads key=value settings from r into t, one pair per line.
// Blank lines and lines starting with '#' are skipped. Whitespace around
// keys and values is trimmed. A key repeated on a later line overwrites
// the earlier value, which lets callers layer settings sources by
// loading them in precedence order.
func LoadReader(t *Table, r io.Reader) error {
	sc := bufio.NewScanner(r)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return errors.Errorf("line %d: missing '=' separator", lineno)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := t.Set(key, value); err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
	}

	return errors.Wrap(sc.Err(), "read settings")
}

// LoadFile loads the settings file at path into t. See LoadReader for
// the accepted format.
func LoadFile(t *Table, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open settings file")
	}
	defer f.Close()

	return LoadReader(t, f)
}
