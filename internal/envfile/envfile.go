// Package envfile loads dotenv-style files into the process environment.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Loader applies dotenv files to an environment. Variables that are already
// set are left alone, matching godotenv.Load.
type Loader struct {
	LookupEnv func(key string) (string, bool)
	Setenv    func(key, value string) error
}

// NewLoader returns a Loader bound to the process environment.
func NewLoader() *Loader {
	return &Loader{
		LookupEnv: os.LookupEnv,
		Setenv:    os.Setenv,
	}
}

// Result describes what a Load call did.
type Result struct {
	Path    string
	Found   bool
	Applied []string // variable names newly set, sorted
	Skipped []string // variable names already present, sorted
}

// Load reads path and sets any variables not yet present. A missing file is
// not an error: the result reports Found=false.
func (l *Loader) Load(path string) (Result, error) {
	res := Result{Path: path}

	vars, found, err := read(path)
	if err != nil {
		return res, err
	}
	if !found {
		return res, nil
	}
	res.Found = true

	for _, key := range sortedKeys(vars) {
		if _, ok := l.LookupEnv(key); ok {
			res.Skipped = append(res.Skipped, key)
			continue
		}
		if err := l.Setenv(key, vars[key]); err != nil {
			return res, fmt.Errorf("set %s: %w", key, err)
		}
		res.Applied = append(res.Applied, key)
	}
	return res, nil
}

// ReadFile parses path without touching the environment. A missing file
// yields an empty map.
func ReadFile(path string) (map[string]string, error) {
	vars, found, err := read(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]string{}, nil
	}
	return vars, nil
}

func read(path string) (map[string]string, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", path, err)
	}
	return vars, true, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
