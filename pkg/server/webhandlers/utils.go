package webhandlers

import (
	"errors"
	"net/http"

	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/web"
)

var log = internal.GetLogger()

// renderFormError shows a form problem on the page itself. Bad input gets a 400, anything
// else a 500.
func renderFormError(
	w http.ResponseWriter,
	r *http.Request,
	page *web.Page,
	msgs *models.Messages,
	err error,
) {
	status := http.StatusInternalServerError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		status = http.StatusRequestEntityTooLarge
	default:
		log.Errorf("failed to read form: %s", err)
	}
	msgs.Error(err.Error())
	page.RenderStatus(w, r, status)
}
