package web

import (
	"html/template"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
)

const (
	AnnotatePath  = "/annotate"
	VectorizePath = "/vectorize"

	messagesTemplate = "templates/components/messages.html"
)

type KindOption struct {
	Value    models.AnalysisKind
	Label    string
	Selected bool
}

// AnnotatePageData backs the annotate form and, after a submit, its report.
type AnnotatePageData struct {
	OutputDir string
	Kinds     []KindOption
	Previews  []FilePreview
	Report    *pipeline.AnnotateReport
}

type FilePreview struct {
	Name    string
	Size    int64
	Content template.HTML
}

type VectorizePageData struct {
	OutputDir string
	Preview   *FilePreview
	Report    *pipeline.VectorizeReport
}

// KindOptions lists every analysis kind, marking the selected ones.
func KindOptions(selected []models.AnalysisKind) []KindOption {
	options := make([]KindOption, 0, len(models.AllAnalysisKinds))
	for _, k := range models.AllAnalysisKinds {
		opt := KindOption{Value: k, Label: k.Label()}
		for _, s := range selected {
			if s == k {
				opt.Selected = true
			}
		}
		options = append(options, opt)
	}
	return options
}

func NewFilePreview(file pipeline.InputFile, lexer string) FilePreview {
	return FilePreview{
		Name:    file.Name,
		Size:    int64(len(file.Content)),
		Content: Preview(file.Content, lexer),
	}
}

func NewAnnotatePage(data *AnnotatePageData) *Page {
	return NewPage(
		"Annotate",
		"Split text files into segments and annotate them for Label Studio",
		AnnotatePath,
		[]string{"templates/pages/annotate.html", messagesTemplate},
		data,
	)
}

func NewVectorizePage(data *VectorizePageData) *Page {
	return NewPage(
		"Vectorize",
		"Compute TF-IDF vectors for the texts of an annotation file",
		VectorizePath,
		[]string{"templates/pages/vectorize.html", messagesTemplate},
		data,
	)
}

func NewNotFoundPage() *Page {
	return NewPage("Not Found", "", "", []string{"templates/pages/404.html"}, nil)
}
