package observers

import "os"

// NewDefaultLoggingObserver creates a logging observer writing the full
// cycle narrative to stdout
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(os.Stdout, LogDetail)
}
