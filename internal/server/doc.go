// Package server runs the devnet HTTP listener with signal driven graceful
// shutdown.
package server
