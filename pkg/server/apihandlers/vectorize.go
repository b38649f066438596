package apihandlers

import (
	"net/http"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
	"github.com/getzep/annotext/pkg/server/handlertools"
)

// VectorizeHandler vectorizes the texts of one uploaded annotation file.
//
// Form fields: file, output_dir (optional).
func VectorizeHandler(appState *models.AppState) http.HandlerFunc {
	flow := pipeline.NewVectorizeFlow(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := handlertools.ParseUploads(r, handlertools.FileField)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if len(files) > 1 {
			handlertools.RenderError(
				w,
				models.NewBadRequestError("upload a single JSON file, got %d", len(files)),
				http.StatusBadRequest,
			)
			return
		}

		report := flow.Run(handlertools.FlowContext(r), pipeline.VectorizeRequest{
			File:      files[0],
			OutputDir: handlertools.OutputDirFromForm(r),
		})

		if err := handlertools.EncodeJSON(w, report); err != nil {
			log.Errorf("unable to encode vectorize report: %s", err)
		}
	}
}
