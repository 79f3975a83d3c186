package ports

// Logger is the diagnostic log boundary. It writes to stderr only; the
// primary output stream is reserved for task-state emissions.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
