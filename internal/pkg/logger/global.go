package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance. This should be called once
// during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, falling back to a
// default logger if none has been set.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			globalLogger = &AppLogger{Logger: logrus.New()}
		})
	}

	return globalLogger
}

// Info logs an info message with fields using the global logger
func Info(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Info(msg)
}

// Warn logs a warning message with fields using the global logger
func Warn(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Warn(msg)
}

// Error logs an error message with fields using the global logger
func Error(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Error(msg)
}

// Debug logs a debug message with fields using the global logger
func Debug(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Debug(msg)
}
