package clouch

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/clouch/pkg/logger"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

// Middleware classifies every request by its User-Agent, stores the result
// in the request context and rewrites HTML responses for devices the
// rewriter accepts.
//
// Only complete 200 responses with an uncompressed text/html body no larger
// than the configured limit are rewritten; everything else is written
// through unchanged. Responses to other devices are never buffered.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := o.classifier.Parse(r.UserAgent())
			o.metrics.classified(res.Device.Type)

			r = r.WithContext(useragent.WithContext(r.Context(), res))
			w.Header().Add("Vary", "User-Agent")

			if reason := o.skip(r, res); reason != "" {
				o.metrics.passedThrough(reason)
				next.ServeHTTP(w, r)
				return
			}

			bw := &bufferedWriter{ResponseWriter: w, limit: o.maxBodySize}
			next.ServeHTTP(bw, r)
			o.finish(bw, r, res)
		})
	}
}

func (o *options) skip(r *http.Request, res useragent.Result) string {
	switch {
	case !o.rewriter.Accepts(res):
		return ReasonDevice
	case r.Method != http.MethodGet && r.Method != http.MethodPost:
		return ReasonMethod
	}
	return ""
}

// finish writes the buffered response, rewritten when possible.
func (o *options) finish(bw *bufferedWriter, r *http.Request, res useragent.Result) {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}
	if bw.sniffing {
		bw.decide(nil)
	}
	if !bw.buffering {
		o.metrics.passedThrough(bw.reason)
		o.logger.DebugContext(r.Context(), "response passed through",
			logger.Path(r.URL.Path),
			logger.Reason(bw.reason),
		)
		return
	}

	start := time.Now()
	var out bytes.Buffer
	st, err := o.rewriter.RewriteHTML(res, bytes.NewReader(bw.buf.Bytes()), &out)

	body := out.Bytes()
	switch {
	case err != nil:
		o.logger.ErrorContext(r.Context(), "rewrite failed, serving original",
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		o.metrics.passedThrough(ReasonError)
		body = bw.buf.Bytes()
	case st.Rewritten == 0:
		o.metrics.passedThrough(ReasonNoMatch)
	default:
		bw.Header().Del("ETag")
		o.metrics.rewritten(st.Rewritten, st.Replacements)
		o.logger.DebugContext(r.Context(), "response rewritten",
			logger.Path(r.URL.Path),
			logger.Client(res.ShortIdentifier()),
			logger.Group("rewrite",
				logger.Elements(st.Elements),
				logger.Rewritten(st.Rewritten),
				logger.Replacements(st.Replacements),
			),
			logger.Duration(time.Since(start)),
		)
	}

	bw.Header().Set("Content-Length", strconv.Itoa(len(body)))
	bw.ResponseWriter.WriteHeader(bw.status)
	if _, err := bw.ResponseWriter.Write(body); err != nil {
		o.logger.DebugContext(r.Context(), "client write failed", logger.Error(err))
	}
}

// bufferedWriter holds back an eligible HTML response until the handler
// returns. Anything else, or a body that outgrows limit, is written through.
type bufferedWriter struct {
	http.ResponseWriter

	limit       int64
	status      int
	wroteHeader bool
	sniffing    bool // untyped 200, decided at the first non-empty write
	buffering   bool
	reason      string
	buf         bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(status int) {
	if bw.wroteHeader {
		return
	}
	// Informational responses are forwarded and do not end the header phase.
	if status >= 100 && status < 200 && status != http.StatusSwitchingProtocols {
		bw.ResponseWriter.WriteHeader(status)
		return
	}

	bw.wroteHeader = true
	bw.status = status
	h := bw.Header()
	if status == http.StatusOK && h.Get("Content-Type") == "" && h.Get("Content-Encoding") == "" {
		bw.sniffing = true
		return
	}
	bw.decide(nil)
}

// decide settles whether the response is buffered, sniffing the
// Content-Type from p the way net/http does when none was set.
func (bw *bufferedWriter) decide(p []byte) {
	if bw.sniffing {
		bw.sniffing = false
		if len(p) > 0 {
			bw.Header().Set("Content-Type", http.DetectContentType(p))
		}
	}
	bw.reason = bw.eligibility(bw.status)
	if bw.reason == "" {
		bw.buffering = true
		return
	}
	bw.ResponseWriter.WriteHeader(bw.status)
}

func (bw *bufferedWriter) eligibility(status int) string {
	h := bw.Header()
	if status != http.StatusOK {
		return ReasonStatus
	}
	if enc := h.Get("Content-Encoding"); enc != "" && enc != "identity" {
		return ReasonEncoded
	}
	mt, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil || mt != "text/html" {
		return ReasonNotHTML
	}
	if n, err := strconv.ParseInt(h.Get("Content-Length"), 10, 64); err == nil && n > bw.limit {
		return ReasonTooLarge
	}
	return ""
}

func (bw *bufferedWriter) Write(p []byte) (int, error) {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}
	if bw.sniffing {
		if len(p) == 0 {
			return 0, nil
		}
		bw.decide(p)
	}
	if !bw.buffering {
		return bw.ResponseWriter.Write(p)
	}

	if int64(bw.buf.Len()+len(p)) > bw.limit {
		bw.spill()
		return bw.ResponseWriter.Write(p)
	}
	return bw.buf.Write(p)
}

// spill gives up on rewriting and writes what was buffered so far.
func (bw *bufferedWriter) spill() {
	bw.buffering = false
	bw.reason = ReasonTooLarge
	bw.ResponseWriter.WriteHeader(bw.status)
	if bw.buf.Len() > 0 {
		_, _ = bw.ResponseWriter.Write(bw.buf.Bytes())
	}
	bw.buf = bytes.Buffer{}
}

// Flush forwards flushes only once the response is no longer buffered.
func (bw *bufferedWriter) Flush() {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}
	if bw.sniffing {
		bw.decide(nil)
	}
	if bw.buffering {
		return
	}
	if f, ok := bw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (bw *bufferedWriter) Unwrap() http.ResponseWriter {
	return bw.ResponseWriter
}
