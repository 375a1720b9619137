package clouch

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clouch/pkg/logger"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

// FromRequest returns the classification stored by Middleware. Requests that
// did not pass through the middleware are classified on the spot.
func FromRequest(r *http.Request) useragent.Result {
	if res, ok := useragent.FromContext(r.Context()); ok {
		return res
	}
	return useragent.Parse(r.UserAgent())
}

// LoggerExtractor adds the classified device type to records logged with a
// request context.
//
//	log := logger.New(logger.WithContextExtractors(clouch.LoggerExtractor()))
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		res, ok := useragent.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.DeviceType(res.Device.Type), true
	}
}
