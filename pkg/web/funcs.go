package web

import (
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/getzep/sprig/v3"

	"github.com/getzep/annotext/pkg/models"
)

var messageClasses = map[models.MessageLevel]string{
	models.LevelSuccess: "alert-success",
	models.LevelInfo:    "alert-info",
	models.LevelWarning: "alert-warning",
	models.LevelError:   "alert-error",
}

func messageClass(level models.MessageLevel) string {
	if c, ok := messageClasses[level]; ok {
		return c
	}
	return "alert-info"
}

func humanBytes(n int64) string {
	if n < 0 {
		return ""
	}
	return humanize.Bytes(uint64(n))
}

// TemplateFuncs returns the sprig function map plus the page helpers.
func TemplateFuncs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["MessageClass"] = messageClass
	funcs["HumanBytes"] = humanBytes
	funcs["Comma"] = humanize.Comma
	return funcs
}
