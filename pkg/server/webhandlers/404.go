package webhandlers

import (
	"net/http"

	"github.com/getzep/annotext/pkg/web"
)

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.NewNotFoundPage().RenderStatus(w, r, http.StatusNotFound)
	}
}
