package network

import "time"

// Config holds WebSocket driver configuration
type Config struct {
	// Address to bind
	Address string

	// FrameInterval is how often each session calls engine Step
	FrameInterval time.Duration

	// Timing
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	InputQueueSize  int
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		FrameInterval:   16 * time.Millisecond,
		ReadTimeout:     5 * time.Minute,
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		InputQueueSize:  64,
	}
}
