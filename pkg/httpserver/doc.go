// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled, then calls http.Server.Shutdown with the
// configured deadline. Signal handling is left to the caller, typically via
// signal.NotifyContext.
//
// NewFromConfig builds a Server from a Config filled by the config package.
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
