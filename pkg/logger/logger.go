package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env   string // development escribe consola legible; cualquier otro valor, JSON
	Level string // trace|debug|info|warn|error; vacío o desconocido cae a info
}

// Logger envuelve zerolog para inyectarlo por constructor en vez de depender del global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno. Los logs de debug del flujo de
// login (email desconocido vs password incorrecto) solo salen con Level=debug.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Las librerías que usan el global de zerolog salen por el mismo writer.
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
