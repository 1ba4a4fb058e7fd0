package equity

// Logger is the structured logging surface the Calculator uses for
// construction diagnostics and shape-error rejections. It is satisfied
// by *charmbracelet/log.Logger; tests may substitute a discard logger
// without importing charmbracelet/log themselves.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// discardLogger implements Logger by dropping everything; used as the
// zero-value default so constructing a Calculator never requires a
// logger argument.
type discardLogger struct{}

func (discardLogger) Debug(interface{}, ...interface{}) {}
func (discardLogger) Warn(interface{}, ...interface{})  {}
func (discardLogger) Error(interface{}, ...interface{}) {}
