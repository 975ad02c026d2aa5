package server

// Server defines the lifecycle of the devnet listener.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Shutdown stops the listener and waits for in-flight requests.
	Shutdown()
}
