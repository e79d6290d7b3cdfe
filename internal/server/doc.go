// Package server runs the co-script HTTP server and the background workers
// side by side, and shuts both down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
