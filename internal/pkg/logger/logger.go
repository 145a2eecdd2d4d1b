package logger

import (
	"fmt"
	"log"
	"os"
	"runtime"
)

var (
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
)

func init() {
	infoLogger = log.New(os.Stdout, "[INFO] ", log.Ldate|log.Ltime)
	warnLogger = log.New(os.Stdout, "[WARN] ", log.Ldate|log.Ltime)
	errorLogger = log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime)
	debugLogger = log.New(os.Stdout, "[DEBUG] ", log.Ldate|log.Ltime)
}

func Infof(format string, v ...any) {
	infoLogger.Printf(format, v...)
}

func Warnf(format string, v ...any) {
	warnLogger.Printf(format, v...)
}

// Errorf logs with the caller's file:line so failures inside jobs are
// traceable without a stack trace.
func Errorf(format string, v ...any) {
	_, file, line, _ := runtime.Caller(1)
	errorLogger.Printf("[%s:%d] %s", file, line, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...any) {
	if os.Getenv("APP_DEBUG") == "" {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	debugLogger.Printf("[%s:%d] %s", file, line, fmt.Sprintf(format, v...))
}
