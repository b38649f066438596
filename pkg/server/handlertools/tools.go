package handlertools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
)

var log = internal.GetLogger()

const (
	FilesField     = "files"
	FileField      = "file"
	KindsField     = "kinds"
	OutputDirField = "output_dir"

	// maxFormMemory is the part of a multipart form kept in memory; the rest spills to disk.
	maxFormMemory = 8 << 20
)

// FlowContext is the context flows run under. It keeps the request values (trace span,
// request id) but ignores client disconnects: a flow runs to completion once started.
func FlowContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// RenderError renders an error response.
func RenderError(w http.ResponseWriter, err error, status int) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf(
			"request body too large. upload fewer or smaller files (limit %d bytes)",
			maxBytesErr.Limit,
		)
	}

	if errors.Is(err, models.ErrBadRequest) {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
	} else {
		log.Debug(err)
	}

	http.Error(w, err.Error(), status)
}

// ParseUploads reads every file posted under field of a multipart form.
func ParseUploads(r *http.Request, field string) ([]pipeline.InputFile, error) {
	if err := parseForm(r); err != nil {
		return nil, err
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, models.NewBadRequestError("no file uploaded in form field %q", field)
	}

	files := make([]pipeline.InputFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, fmt.Errorf("unable to open upload %s: %w", h.Filename, err)
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("unable to read upload %s: %w", h.Filename, err)
		}
		files = append(files, pipeline.InputFile{Name: h.Filename, Content: content})
	}
	return files, nil
}

// KindsFromForm parses the selected analysis kinds. Both repeated fields and comma
// separated values are accepted.
func KindsFromForm(r *http.Request) ([]models.AnalysisKind, error) {
	if err := parseForm(r); err != nil {
		return nil, err
	}
	return models.ParseAnalysisKinds(r.MultipartForm.Value[KindsField])
}

// OutputDirFromForm returns the trimmed output directory, or "" for the configured default.
func OutputDirFromForm(r *http.Request) string {
	if err := parseForm(r); err != nil {
		return ""
	}
	values := r.MultipartForm.Value[OutputDirField]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func parseForm(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return models.NewBadRequestError("unable to parse multipart form: %v", err)
	}
	return nil
}
