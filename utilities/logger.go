package utilities

import (
	"io"
	"log"
	"os"
	"time"
)

const logFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile

var (
	InfoLogger  = log.New(os.Stdout, "\033[32m[INFO]\033[0m ", logFlags)
	ErrorLogger = log.New(os.Stderr, "\033[31m[ERROR]\033[0m ", logFlags)
	DebugLogger = log.New(io.Discard, "\033[36m[DEBUG]\033[0m ", logFlags)
)

// InitLogger configura os loggers. Mensagens de debug só são escritas quando
// debug é verdadeiro.
func InitLogger(debug bool) {
	log.SetFlags(logFlags)

	InfoLogger.SetOutput(os.Stdout)
	ErrorLogger.SetOutput(os.Stderr)
	if debug {
		DebugLogger.SetOutput(os.Stdout)
	} else {
		DebugLogger.SetOutput(io.Discard)
	}
}

// SetOutput redireciona todos os loggers, usado pelos testes.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
	DebugLogger.SetOutput(w)
}

// LogRequest registra informações sobre a requisição HTTP
func LogRequest(requestID, method, path, remoteAddr string, status int, duration time.Duration) {
	InfoLogger.Printf("[%s] %s %s %s %d %v", requestID, method, path, remoteAddr, status, duration)
}

// LogError registra erros com o contexto em que ocorreram
func LogError(err error, context string) {
	ErrorLogger.Printf("%s: %v", context, err)
}

// LogDebug registra informações de debug
func LogDebug(format string, v ...interface{}) {
	DebugLogger.Printf(format, v...)
}

// LogInfo registra informações gerais
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}
