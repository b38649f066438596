package webhandlers

import (
	"net/http"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
	"github.com/getzep/annotext/pkg/server/handlertools"
	"github.com/getzep/annotext/pkg/web"
)

func GetVectorizePageHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.NewVectorizePage(&web.VectorizePageData{
			OutputDir: appState.Config.Vectorizer.OutputDir,
		}).Render(w, r)
	}
}

func PostVectorizePageHandler(appState *models.AppState) http.HandlerFunc {
	flow := pipeline.NewVectorizeFlow(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		data := &web.VectorizePageData{
			OutputDir: appState.Config.Vectorizer.OutputDir,
			Report:    &pipeline.VectorizeReport{Messages: models.Messages{}},
		}
		if dir := handlertools.OutputDirFromForm(r); dir != "" {
			data.OutputDir = dir
		}

		files, err := handlertools.ParseUploads(r, handlertools.FileField)
		if err != nil {
			renderFormError(w, r, web.NewVectorizePage(data), &data.Report.Messages, err)
			return
		}
		preview := web.NewFilePreview(files[0], "json")
		data.Preview = &preview

		data.Report = flow.Run(handlertools.FlowContext(r), pipeline.VectorizeRequest{
			File:      files[0],
			OutputDir: data.OutputDir,
		})
		web.NewVectorizePage(data).Render(w, r)
	}
}
