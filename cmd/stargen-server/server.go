package main

import (
	"github.com/keldric/stargen/internal/stargen"
	"github.com/keldric/stargen/internal/stargen/notify"
)

// stargenLoggerAdapter adapts the server's Logger to the stargen.Logger
// interface
type stargenLoggerAdapter struct {
	logger *Logger
}

func (a *stargenLoggerAdapter) Debugf(format string, v ...any) {
	a.logger.Debugf(format, v...)
}

func (a *stargenLoggerAdapter) Infof(format string, v ...any) {
	a.logger.Infof(format, v...)
}

func (a *stargenLoggerAdapter) Warnf(format string, v ...any) {
	a.logger.Warnf(format, v...)
}

func (a *stargenLoggerAdapter) Errorf(format string, v ...any) {
	a.logger.Errorf(format, v...)
}

// Server represents the HTTP server for the star system generator
type Server struct {
	tables      *stargen.TableSet
	broadcaster *notify.SystemBroadcaster
	logger      *Logger
}

// NewServer creates a new server instance sharing one validated table set
// across all generation requests.
func NewServer(tables *stargen.TableSet, logger *Logger) *Server {
	return &Server{
		tables:      tables,
		broadcaster: notify.NewSystemBroadcaster(),
		logger:      logger,
	}
}

// genLogger returns the library-facing logger for generation runs.
func (s *Server) genLogger() stargen.Logger {
	return &stargenLoggerAdapter{logger: s.logger}
}

// Close shuts down the watch broadcaster.
func (s *Server) Close() error {
	return s.broadcaster.Close()
}
