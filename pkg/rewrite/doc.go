// Package rewrite replaces "click" with "touch" in the markup of HTML
// documents served to touch devices.
//
// The rewrite pass visits every element below <body>, reads its inner
// markup, replaces every literal occurrence of the source text and writes the
// markup back when something changed. The match is a plain substring match on
// serialized markup, so it also rewrites attribute names and values
// (onclick becomes ontouch), script bodies and visible text.
//
// # Usage
//
//	res := useragent.Parse(r.UserAgent())
//	stats, err := rewrite.RewriteHTML(res, upstreamBody, w)
//
// Or with an already parsed document:
//
//	doc, _ := goquery.NewDocumentFromReader(body)
//	if stats, ok := rewrite.MaybeRewrite(res, doc); ok {
//	    log.Printf("rewrote %d elements", stats.Rewritten)
//	}
//
// By default only devices classified as mobile are rewritten; WithPolicy
// widens this, for example to tablets.
package rewrite
