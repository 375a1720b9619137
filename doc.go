// Package clouch turns "click" into "touch" on pages served to touch
// devices.
//
// The work is split across three packages:
//
//   - pkg/useragent classifies User-Agent strings into browser, engine,
//     operating system, device and CPU using ordered regular expression
//     rule tables.
//   - pkg/rewrite rewrites the markup of parsed HTML documents.
//   - this package ties them together as net/http middleware.
//
// # Usage
//
//	mw := clouch.Middleware(
//	    clouch.WithLogger(log),
//	    clouch.WithMetrics(clouch.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	http.ListenAndServe(":8080", mw(site))
//
// Handlers behind the middleware can read the classification:
//
//	res := clouch.FromRequest(r)
//	if res.IsMobile() { ... }
//
// # Configuration
//
// NewFromConfig builds the middleware from a Config, usually loaded from the
// environment with pkg/config:
//
//	CLOUCH_MAX_BODY_SIZE    largest buffered body in bytes (default 4 MiB)
//	CLOUCH_CACHE_SIZE       memoized classifications (default 1024)
//	CLOUCH_REWRITE_TABLETS  rewrite for tablets as well as phones
//	CLOUCH_RULES_FILE       YAML file with extra classification rules
//
// Every response gets "Vary: User-Agent", since its body may depend on the
// client.
package clouch
