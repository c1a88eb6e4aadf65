package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
)

// Logger simple por niveles para consola. Los tags de nivel van coloreados
// (verde/amarillo/rojo) para distinguir de un vistazo el resumen de cada etapa.
type Logger struct {
	l  *log.Logger
	ts bool

	info string
	warn string
	err  string
}

func NewLogger(withTimestamp bool) *Logger {
	return &Logger{
		l:    log.New(os.Stdout, "", 0),
		ts:   withTimestamp,
		info: color.New(color.FgGreen).Sprint("INFO "),
		warn: color.New(color.FgYellow).Sprint("WARN "),
		err:  color.New(color.FgRed).Sprint("ERROR"),
	}
}

func (lg *Logger) Info(format string, args ...any) {
	lg.emit(lg.info, format, args...)
}

func (lg *Logger) Warn(format string, args ...any) {
	lg.emit(lg.warn, format, args...)
}

func (lg *Logger) Error(format string, args ...any) {
	lg.emit(lg.err, format, args...)
}

func (lg *Logger) emit(tag, format string, args ...any) {
	if lg.ts {
		lg.l.Printf("[%s] %s %s", time.Now().Format(time.RFC3339), tag, fmt.Sprintf(format, args...))
		return
	}
	lg.l.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}
