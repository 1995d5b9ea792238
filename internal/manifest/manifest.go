package manifest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/errors"
)

const (
	TemplateStartTag = "{"
	TemplateEndTag   = "}"
)

// Entry is one manifest line: a digest bound to a path. Size is the number
// of bytes digested; it is only known for freshly computed entries (parsed
// manifests do not carry it).
type Entry struct {
	Algorithm digest.Algorithm
	Hex       string
	Path      string
	Size      int64
}

// FormatGNU renders the entry in coreutils style: digest, two spaces, path.
func (e Entry) FormatGNU() string {
	return e.Hex + "  " + e.Path
}

// FormatBSD renders the entry in BSD tag style: "MD5 (path) = digest".
func (e Entry) FormatBSD() string {
	return fmt.Sprintf("%s (%s) = %s", strings.ToUpper(e.Algorithm.String()), e.Path, e.Hex)
}

// Formatter renders manifest lines in one of the supported styles.
type Formatter interface {
	FormatLine(e Entry) string
}

type gnuFormatter struct{}

func (gnuFormatter) FormatLine(e Entry) string { return e.FormatGNU() }

type bsdFormatter struct{}

func (bsdFormatter) FormatLine(e Entry) string { return e.FormatBSD() }

// Template is a compiled manifest line template.
type Template struct {
	t *fasttemplate.Template
}

// NewTemplate compiles a line template. Unclosed placeholders are an
// invalid-input error.
func NewTemplate(tmpl string) (*Template, error) {
	t, err := fasttemplate.NewTemplate(tmpl, TemplateStartTag, TemplateEndTag)
	if err != nil {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("invalid output template %q", tmpl), err)
	}
	return &Template{t: t}, nil
}

// FormatLine renders the entry through the template.
func (t *Template) FormatLine(e Entry) string {
	return t.t.ExecuteString(map[string]interface{}{
		"digest":    e.Hex,
		"path":      e.Path,
		"algorithm": e.Algorithm.String(),
		"ALGORITHM": strings.ToUpper(e.Algorithm.String()),
		"size":      strconv.FormatInt(e.Size, 10),
	})
}

// NewFormatter builds a Formatter for the named output format ("gnu",
// "bsd" or "template"). The template argument is only consulted for the
// template format.
func NewFormatter(format string, tmpl string) (Formatter, error) {
	switch format {
	case "", "gnu":
		return gnuFormatter{}, nil
	case "bsd":
		return bsdFormatter{}, nil
	case "template":
		return NewTemplate(tmpl)
	default:
		return nil, errors.NewInvalidInputError(fmt.Sprintf("unknown output format %q", format), nil)
	}
}

// Write renders all entries through the formatter, one line each.
func Write(w io.Writer, entries []Entry, f Formatter) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, f.FormatLine(e)); err != nil {
			return errors.NewManifestError("failed to write manifest line", err)
		}
	}
	return nil
}
