package rewrite

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/clouch/pkg/logger"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

const (
	// DefaultFrom is the text replaced by default.
	DefaultFrom = "click"
	// DefaultTo is the default replacement.
	DefaultTo = "touch"
)

// Stats describes the outcome of one rewrite pass.
type Stats struct {
	Elements     int // elements below <body> still attached when visited
	Rewritten    int // elements whose markup was replaced
	Replacements int // occurrences replaced in total
}

// Rewriter performs the rewrite pass for accepted device types.
// It holds no per-document state and is safe for concurrent use.
type Rewriter struct {
	from   string
	to     string
	accept map[string]struct{}
	logger *slog.Logger
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithPolicy sets the device types that get rewritten. Empty types are ignored.
func WithPolicy(deviceTypes ...string) Option {
	return func(rw *Rewriter) {
		accept := make(map[string]struct{}, len(deviceTypes))
		for _, t := range deviceTypes {
			if t != "" {
				accept[t] = struct{}{}
			}
		}
		rw.accept = accept
	}
}

// WithReplacement overrides the replaced text and its replacement.
// Panics when from is empty.
func WithReplacement(from, to string) Option {
	if from == "" {
		panic("WithReplacement: from cannot be empty")
	}
	return func(rw *Rewriter) {
		rw.from = from
		rw.to = to
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(rw *Rewriter) {
		if l != nil {
			rw.logger = l
		}
	}
}

// New creates a Rewriter that by default rewrites "click" to "touch" for
// mobile devices only.
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{
		from:   DefaultFrom,
		to:     DefaultTo,
		accept: map[string]struct{}{useragent.DeviceTypeMobile: {}},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// Accepts reports whether documents served to res should be rewritten.
func (rw *Rewriter) Accepts(res useragent.Result) bool {
	_, ok := rw.accept[res.Device.Type]
	return ok
}

// Rewrite runs the rewrite pass on doc unconditionally.
func (rw *Rewriter) Rewrite(doc *goquery.Document) Stats {
	var st Stats
	if doc == nil || len(doc.Nodes) == 0 {
		return st
	}
	root := doc.Nodes[0]

	doc.Find("body *").Each(func(_ int, el *goquery.Selection) {
		// An ancestor's rewrite replaced this subtree; its markup is already done.
		if !attached(el.Nodes[0], root) {
			return
		}
		st.Elements++

		inner, err := el.Html()
		if err != nil {
			rw.logger.Warn("skipping element that failed to render", logger.Error(err))
			return
		}
		n := strings.Count(inner, rw.from)
		if n == 0 {
			return
		}
		el.SetHtml(strings.ReplaceAll(inner, rw.from, rw.to))
		st.Rewritten++
		st.Replacements += n
	})

	rw.logger.Debug("rewrite pass finished",
		logger.Elements(st.Elements),
		logger.Rewritten(st.Rewritten),
		logger.Replacements(st.Replacements),
	)
	return st
}

// MaybeRewrite rewrites doc when the rewriter accepts res. The boolean
// reports whether the pass ran.
func (rw *Rewriter) MaybeRewrite(res useragent.Result, doc *goquery.Document) (Stats, bool) {
	if !rw.Accepts(res) {
		return Stats{}, false
	}
	return rw.Rewrite(doc), true
}

// RewriteHTML reads an HTML document from r and writes it to w, rewritten
// when the rewriter accepts res. The input is written back verbatim when the
// device is not accepted or nothing was replaced.
func (rw *Rewriter) RewriteHTML(res useragent.Result, r io.Reader, w io.Writer) (Stats, error) {
	if !rw.Accepts(res) {
		if _, err := io.Copy(w, r); err != nil {
			return Stats{}, errors.Join(ErrWrite, err)
		}
		return Stats{}, nil
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, errors.Join(ErrRead, err)
	}

	out, st, err := rw.rewriteBytes(src)
	if err != nil {
		return st, err
	}
	if _, err := w.Write(out); err != nil {
		return st, errors.Join(ErrWrite, err)
	}
	return st, nil
}

// rewriteBytes returns src itself when nothing was replaced.
func (rw *Rewriter) rewriteBytes(src []byte) ([]byte, Stats, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(src))
	if err != nil {
		return nil, Stats{}, errors.Join(ErrParse, err)
	}

	st := rw.Rewrite(doc)
	if st.Rewritten == 0 {
		return src, st, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(src))
	if err := html.Render(&buf, doc.Nodes[0]); err != nil {
		return nil, st, errors.Join(ErrRender, err)
	}
	return buf.Bytes(), st, nil
}

// attached reports whether n is still connected to root.
func attached(n, root *html.Node) bool {
	for n.Parent != nil {
		n = n.Parent
	}
	return n == root
}

var defaultRewriter = New()

// Rewrite runs the default rewrite pass ("click" to "touch") on doc.
func Rewrite(doc *goquery.Document) Stats {
	return defaultRewriter.Rewrite(doc)
}

// MaybeRewrite rewrites doc when res is classified as a mobile device.
func MaybeRewrite(res useragent.Result, doc *goquery.Document) (Stats, bool) {
	return defaultRewriter.MaybeRewrite(res, doc)
}

// RewriteHTML copies an HTML document from r to w, rewritten when res is
// classified as a mobile device.
func RewriteHTML(res useragent.Result, r io.Reader, w io.Writer) (Stats, error) {
	return defaultRewriter.RewriteHTML(res, r, w)
}
