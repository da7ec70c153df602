// Package scenario resolves the fixed directory layout for a named batch
// of documents: data/inputs/<name> for sources, data/outputs/<name> for
// generated PDFs, and config/styles.yaml for styling.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for scenario resolution.
var (
	ErrEmptyName        = errors.New("scenario name cannot be empty")
	ErrInvalidName      = errors.New("invalid scenario name")
	ErrInputDirNotFound = errors.New("scenario input directory not found")
)

// Directory layout under the project root.
const (
	inputsDir  = "data/inputs"
	outputsDir = "data/outputs"
	configDir  = "config"
	styleFile  = "styles.yaml"
)

// outputDirPermissions applies to created output directories.
const outputDirPermissions = 0o750

// Paths holds the resolved directories for one scenario. Immutable after
// Resolve; the input directory is known to exist and the output directory
// has been created.
type Paths struct {
	InputDir  string
	OutputDir string
	StyleFile string
}

// Resolve derives the scenario's paths under root, verifies the input
// directory exists, and creates the output directory with parents if
// absent. Safe to call repeatedly for the same scenario.
func Resolve(root, name string) (Paths, error) {
	if err := ValidateName(name); err != nil {
		return Paths{}, err
	}
	if root == "" {
		root = "."
	}

	p := Paths{
		InputDir:  filepath.Join(root, filepath.FromSlash(inputsDir), name),
		OutputDir: filepath.Join(root, filepath.FromSlash(outputsDir), name),
		StyleFile: filepath.Join(root, configDir, styleFile),
	}

	info, err := os.Stat(p.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return Paths{}, fmt.Errorf("%w: %s", ErrInputDirNotFound, p.InputDir)
		}
		return Paths{}, fmt.Errorf("checking input directory: %w", err)
	}
	if !info.IsDir() {
		return Paths{}, fmt.Errorf("%w: %s is not a directory", ErrInputDirNotFound, p.InputDir)
	}

	if err := os.MkdirAll(p.OutputDir, outputDirPermissions); err != nil {
		return Paths{}, fmt.Errorf("creating output directory: %w", err)
	}

	return p, nil
}

// ValidateName rejects empty names and names that would escape the
// scenario directories.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q must be a plain directory name", ErrInvalidName, name)
	}
	return nil
}
