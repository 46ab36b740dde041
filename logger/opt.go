package logger

import "log"

// A LoggerOptFn is a functional option configuring a ReplyLogger when constructing a new one.
type LoggerOptFn func(*ReplyLogger)

// WithEnv sets the environment ReplyLogger is operating in.
func WithEnv(env string) func(*ReplyLogger) {
	return func(l *ReplyLogger) {
		l.env = env
	}
}

// WithLevel sets the log level ReplyLogger uses.
func WithLevel(level LogLevel) func(*ReplyLogger) {
	return func(l *ReplyLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger ReplyLogger uses.
func WithLogger(log *log.Logger) func(*ReplyLogger) {
	return func(l *ReplyLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*ReplyLogger) {
	return func(l *ReplyLogger) {
		l.skip = skip
	}
}
