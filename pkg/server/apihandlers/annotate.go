package apihandlers

import (
	"net/http"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
	"github.com/getzep/annotext/pkg/server/handlertools"
)

// AnnotateHandler annotates the uploaded text files.
//
// Form fields: files (one or more), kinds (repeated or comma separated), output_dir
// (optional). The response is the flow report; per file problems are reported as
// messages, so a 200 does not mean every file was written.
func AnnotateHandler(appState *models.AppState) http.HandlerFunc {
	flow := pipeline.NewAnnotateFlow(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := handlertools.ParseUploads(r, handlertools.FilesField)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		kinds, err := handlertools.KindsFromForm(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if len(kinds) == 0 {
			handlertools.RenderError(
				w,
				models.NewBadRequestError("select at least one analysis kind"),
				http.StatusBadRequest,
			)
			return
		}

		report := flow.Run(handlertools.FlowContext(r), pipeline.AnnotateRequest{
			Files:     files,
			Kinds:     kinds,
			OutputDir: handlertools.OutputDirFromForm(r),
		})

		if err := handlertools.EncodeJSON(w, report); err != nil {
			log.Errorf("unable to encode annotate report: %s", err)
		}
	}
}
