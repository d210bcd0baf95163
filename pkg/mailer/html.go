package mailer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Inline styles; mail clients ignore most stylesheet rules.
const (
	styleBody      = "margin:0;padding:0;background-color:#ffffff;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif"
	styleContainer = "max-width:600px;margin:0 auto;padding:16px"
	stylePreview   = "display:none;overflow:hidden;line-height:1px;opacity:0;max-height:0;max-width:0"
	styleSection   = "padding:8px 0"
	styleParagraph = "margin:0 0 16px;font-size:14px;line-height:20px;color:#333333"
	styleLink      = "color:#067df7;text-decoration:underline"
	styleButton    = "display:inline-block;padding:12px 20px;border-radius:8px;background-color:#000000;color:#ffffff;font-size:16px;font-weight:bold;text-decoration:none"
	styleImage     = "display:block;border:0;outline:none"
	styleDivider   = "border:none;border-top:1px solid #eaeaea;margin:24px 0"
)

var headingStyles = [...]string{
	1: "margin:0 0 24px;font-size:28px;line-height:36px;font-weight:bold;color:#111111",
	2: "margin:0 0 12px;font-size:22px;line-height:28px;font-weight:bold;color:#111111",
	3: "margin:0 0 8px;font-size:16px;line-height:24px;font-weight:600;color:#111111",
}

// Component returns a templ component that writes the full HTML email.
// Text is escaped and URLs are sanitized, so parameter values can never
// inject markup into the document.
func (d Document) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head>`)
		hw.raw(`<meta http-equiv="Content-Type" content="text/html; charset=UTF-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		hw.raw(`</head><body style="` + styleBody + `">`)
		if d.preview != "" {
			hw.raw(`<div style="` + stylePreview + `">`)
			hw.text(d.preview)
			hw.raw(`</div>`)
		}
		hw.raw(`<div style="` + styleContainer + `">`)
		for _, n := range d.nodes {
			hw.node(n)
		}
		hw.raw(`</div></body></html>`)
		return hw.err
	})
}

// HTML renders the document to an HTML string.
func (d Document) HTML(ctx context.Context) (string, error) {
	var b strings.Builder
	if err := d.Component().Render(ctx, &b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return b.String(), nil
}

// IsSafeURL reports whether u survives URL sanitizing. Only http(s), ftp(s),
// mailto, tel and relative URLs do.
func IsSafeURL(u string) bool {
	return templ.URL(u) != templ.FailedSanitizationURL
}

// htmlWriter keeps the first write error and ignores later writes.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) url(s string) {
	hw.text(string(templ.URL(s)))
}

func (hw *htmlWriter) node(n Node) {
	switch n.Kind {
	case NodeSection:
		hw.raw(`<div style="` + styleSection + `">`)
		for _, c := range n.Children {
			hw.node(c)
		}
		hw.raw(`</div>`)
	case NodeHeading:
		lvl := max(1, min(n.Level, 3))
		level := strconv.Itoa(lvl)
		hw.raw(`<h` + level + ` style="` + headingStyles[lvl] + `">`)
		hw.text(n.Text)
		hw.raw(`</h` + level + `>`)
	case NodeParagraph:
		hw.raw(`<p style="` + styleParagraph + `">`)
		for _, c := range n.Children {
			hw.node(c)
		}
		hw.raw(`</p>`)
	case NodeSpan:
		hw.text(n.Text)
	case NodeStrong:
		hw.raw(`<strong>`)
		hw.text(n.Text)
		hw.raw(`</strong>`)
	case NodeImage:
		if !IsSafeURL(n.URL) {
			return
		}
		hw.raw(`<img src="`)
		hw.url(n.URL)
		hw.raw(`" alt="`)
		hw.text(n.Alt)
		hw.raw(`"`)
		if n.Width > 0 {
			hw.raw(` width="` + strconv.Itoa(n.Width) + `"`)
		}
		if n.Height > 0 {
			hw.raw(` height="` + strconv.Itoa(n.Height) + `"`)
		}
		hw.raw(` style="` + styleImage + `">`)
	case NodeLink:
		hw.raw(`<a href="`)
		hw.url(n.URL)
		hw.raw(`" style="` + styleLink + `">`)
		hw.text(n.Text)
		hw.raw(`</a>`)
	case NodeButton:
		hw.raw(`<div style="text-align:center;padding:8px 0"><a href="`)
		hw.url(n.URL)
		hw.raw(`" style="` + styleButton + `">`)
		hw.text(n.Text)
		hw.raw(`</a></div>`)
	case NodeDivider:
		hw.raw(`<hr style="` + styleDivider + `">`)
	}
}
