package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
)

// slogRecoveryLogger adapts slog to handlers.RecoveryHandlerLogger.
type slogRecoveryLogger struct{}

func (slogRecoveryLogger) Println(v ...any) {
	slog.Error("panic recovered", "error", fmt.Sprint(v...))
}

// Recovery turns handler panics into 500 responses and logs them.
func Recovery(printStack bool) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slogRecoveryLogger{}),
		handlers.PrintRecoveryStack(printStack),
	)
}

// Compress gzips responses for clients that accept it.
func Compress(next http.Handler) http.Handler {
	return handlers.CompressHandler(next)
}
