package imports

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is imported when no file is given, relative to the app root.
const DefaultFile = "orders.json"

var (
	// ErrFileNotFound import file.
	ErrFileNotFound = errors.New("import file not found")
	// ErrMalformed is returned when the file is not a JSON list of records.
	ErrMalformed = errors.New("import file is not valid JSON")
)

// ResolvePath resolves the import file against the application root.
func ResolvePath(root, file string) string {
	if file == "" {
		file = DefaultFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(root, file)
}

// Load reads and decodes a feed file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a list of orders", ErrMalformed)
	}
	return records, nil
}

// RunFile loads the feed at path and imports it.
func RunFile(d deps, path string) (Summary, error) {
	records, err := Load(path)
	if err != nil {
		log.Errorf("import file rejected	file=%s err=%v", path, err)
		return Summary{}, err
	}
	return Run(d, records)
}
