// Package paths resolves the --input argument into the ordered list of CSV
// files a run will process.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/csvsieve/pkg/errors"
	"github.com/arthur-debert/csvsieve/pkg/logging"
)

// DiscoverInputs resolves input to the files to process. A plain file is
// returned as-is; a directory yields its *.csv entries (non-recursive) in
// lexical order, keeping file traversal deterministic.
func DiscoverInputs(input string) ([]string, error) {
	logger := logging.GetLogger("paths.discover")

	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"input %q does not exist", input)
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"unable to read input directory %q", input)
	}

	// os.ReadDir sorts by name, so traversal order is stable.
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, filepath.Join(input, entry.Name()))
		}
	}

	if len(files) == 0 {
		return nil, errors.Newf(errors.ErrInputRead,
			"no CSV files found in directory %q", input)
	}

	logger.Debug().
		Str("input", input).
		Int("fileCount", len(files)).
		Msg("Discovered input files")

	return files, nil
}
