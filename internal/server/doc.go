// Package server exposes the cooking pipeline over HTTP.
//
// One endpoint does the work: POST /api/cooking accepts {"query": "..."} and
// replies 200 {"response": "..."} on success. Any pipeline failure is
// converted exactly once, here, into 500 {"detail": "..."}. /health and
// /ready report process liveness.
//
// Example usage:
//
//	srv := server.New(cfg.ListenAddr(), pipeline, logger)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Stop()
package server
