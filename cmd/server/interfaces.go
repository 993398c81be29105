package main

// Broadcaster pushes patch payloads to connected editor clients.
type Broadcaster interface {
	Publish(eventType string, payload any)
}

// Logger is the injected logging abstraction.
type Logger interface {
	Printf(format string, v ...any)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Publish(string, any) {}

type nopServerLogger struct{}

func (nopServerLogger) Printf(string, ...any) {}
