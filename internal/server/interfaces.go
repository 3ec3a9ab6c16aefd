package server

// Server is the lifecycle of the process's HTTP server.
type Server interface {
	// RunServer serves until a termination signal arrives, then shuts
	// down and returns nil. A listener failure is returned as an error.
	RunServer() error

	// Shutdown stops accepting connections and waits, up to the request
	// timeout, for in-flight requests to finish.
	Shutdown()
}
