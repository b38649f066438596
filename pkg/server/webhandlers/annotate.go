package webhandlers

import (
	"net/http"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
	"github.com/getzep/annotext/pkg/server/handlertools"
	"github.com/getzep/annotext/pkg/web"
)

func GetAnnotatePageHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.NewAnnotatePage(&web.AnnotatePageData{
			OutputDir: appState.Config.Annotator.OutputDir,
			Kinds:     web.KindOptions(nil),
		}).Render(w, r)
	}
}

// PostAnnotatePageHandler runs the annotate flow on the submitted form and renders the
// report with a preview of every upload.
func PostAnnotatePageHandler(appState *models.AppState) http.HandlerFunc {
	flow := pipeline.NewAnnotateFlow(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		data := &web.AnnotatePageData{
			OutputDir: appState.Config.Annotator.OutputDir,
			Kinds:     web.KindOptions(nil),
			Report:    &pipeline.AnnotateReport{Messages: models.Messages{}},
		}
		if dir := handlertools.OutputDirFromForm(r); dir != "" {
			data.OutputDir = dir
		}

		files, err := handlertools.ParseUploads(r, handlertools.FilesField)
		if err != nil {
			renderFormError(w, r, web.NewAnnotatePage(data), &data.Report.Messages, err)
			return
		}
		kinds, err := handlertools.KindsFromForm(r)
		if err != nil {
			renderFormError(w, r, web.NewAnnotatePage(data), &data.Report.Messages, err)
			return
		}
		data.Kinds = web.KindOptions(kinds)
		for _, f := range files {
			data.Previews = append(data.Previews, web.NewFilePreview(f, "text"))
		}
		if len(kinds) == 0 {
			data.Report.Messages.Warning("Select at least one action to process the text.")
			web.NewAnnotatePage(data).Render(w, r)
			return
		}

		data.Report = flow.Run(handlertools.FlowContext(r), pipeline.AnnotateRequest{
			Files:     files,
			Kinds:     kinds,
			OutputDir: data.OutputDir,
		})
		web.NewAnnotatePage(data).Render(w, r)
	}
}
