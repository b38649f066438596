package filestore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/pkg/models"
)

var _ models.VectorWriter = &VectorWriter{}

// VectorWriter writes a matrix as a 2-D float64 NumPy array to the first free
// vec_<i>.npy slot, i >= 1. The directory is created when missing.
type VectorWriter struct {
	naming string
}

func NewVectorWriter(naming string) *VectorWriter {
	return &VectorWriter{naming: validNaming(naming)}
}

func (w *VectorWriter) Write(m mat.Matrix, dir string) (models.WriteResult, error) {
	if m == nil {
		return models.WriteResult{}, errors.New("no matrix to write")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.WriteResult{}, fmt.Errorf("unable to create output directory %s: %w", dir, err)
	}

	path, err := w.nextPath(dir)
	if err != nil {
		return models.WriteResult{}, err
	}

	f, err := createExclusive(path)
	if err != nil {
		return models.WriteResult{}, err
	}

	buf := bufio.NewWriter(f)
	err = npyio.Write(buf, m)
	if err == nil {
		err = buf.Flush()
	}

	size, err := finish(f, err)
	if err != nil {
		return models.WriteResult{}, err
	}
	return models.WriteResult{Path: path, Size: size}, nil
}

func (w *VectorWriter) nextPath(dir string) (string, error) {
	if w.naming == config.NamingUnique {
		return joinName(dir, uniqueName(vectorPrefix, vectorExtension)), nil
	}
	for i := 1; ; i++ {
		path := joinName(dir, fmt.Sprintf("%s%d%s", vectorPrefix, i, vectorExtension))
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("unable to check %s: %w", path, err)
		}
	}
}
