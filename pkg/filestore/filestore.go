// Package filestore writes flow outputs to local directories.
//
// Sequential names are derived from the directory contents at write time. Two writers
// racing on the same directory can pick the same name; files are created exclusively so
// the loser fails instead of overwriting.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/internal"
)

var log = internal.GetLogger()

const (
	recordPrefix    = "automation_"
	recordExtension = ".json"
	vectorPrefix    = "vec_"
	vectorExtension = ".npy"
)

// createExclusive creates path for writing, failing if it already exists.
func createExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("output file %s already exists: %w", path, err)
		}
		return nil, fmt.Errorf("unable to create output file %s: %w", path, err)
	}
	return f, nil
}

func uniqueName(prefix, ext string) string {
	return prefix + uuid.New().String() + ext
}

func validNaming(naming string) string {
	if naming == config.NamingUnique {
		return naming
	}
	return config.NamingSequential
}

// finish closes f and returns its final size. On failure the partial file is left in
// place and reported.
func finish(f *os.File, writeErr error) (int64, error) {
	if writeErr != nil {
		_ = f.Close()
		return 0, fmt.Errorf("error writing %s: %w", f.Name(), writeErr)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("error closing %s: %w", f.Name(), err)
	}
	info, err := os.Stat(f.Name())
	if err != nil {
		return 0, err
	}
	log.Debugf("wrote %s (%d bytes)", f.Name(), info.Size())
	return info.Size(), nil
}

func joinName(dir, name string) string {
	return filepath.Join(dir, name)
}
