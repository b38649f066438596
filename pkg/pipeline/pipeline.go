// Package pipeline runs the annotate and vectorize flows end to end and reports their
// outcomes as operator messages.
package pipeline

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
)

var log = internal.GetLogger()

var validate = validator.New()

var tracer trace.Tracer = otel.Tracer("github.com/getzep/annotext/pkg/pipeline")

// InputFile is one uploaded file.
type InputFile struct {
	Name    string `json:"name" validate:"required"`
	Content []byte `json:"-"`
}

func isEmptyInput(err error) bool {
	return errors.Is(err, models.ErrEmptyInput)
}
