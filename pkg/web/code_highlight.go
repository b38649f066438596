package web

import (
	"bytes"
	"html/template"

	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
)

// previewLimit bounds the highlighted preview of an upload.
const previewLimit = 16 << 10

type preWrapper struct{}

func (p *preWrapper) Start(code bool, _ string) string {
	if code {
		return `<pre tabindex="0" class="preview" style="tab-size:2;white-space:pre-wrap;word-break:break-word;">`
	}
	return "<pre>"
}

func (p *preWrapper) End(bool) string {
	return "</pre>"
}

// CodeHighlight takes a string of code and a lexer name and returns a highlighted
// HTML string.
func CodeHighlight(code string, lexer string) (template.HTML, error) {
	l := lexers.Get(lexer)
	if l == nil {
		l = lexers.Fallback
	}
	formatter := html.New(
		html.WrapLongLines(true),
		html.TabWidth(2),
		html.WithPreWrapper(&preWrapper{}),
	)

	iterator, err := l.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get("github"), iterator); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec
}

// Preview highlights the start of an uploaded file. Failures fall back to escaped text.
func Preview(content []byte, lexer string) template.HTML {
	truncated := len(content) > previewLimit
	if truncated {
		content = content[:previewLimit]
	}
	out, err := CodeHighlight(string(content), lexer)
	if err != nil {
		log.Warnf("unable to highlight preview: %s", err)
		out = template.HTML("<pre>" + template.HTMLEscapeString(string(content)) + "</pre>") //nolint:gosec
	}
	if truncated {
		out += "<p class=\"muted\">Preview truncated.</p>"
	}
	return out
}
