package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	log "github.com/schollz/logger"
)

// ParseEnv заполняет структуру из переменных окружения
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf печатает сообщение в stderr и завершает процесс с кодом 1
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// SetupLogger настраивает уровень и вывод журнала.
// В подробном режиме включается уровень debug.
func SetupLogger(verbose bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	log.SetOutput(w)
	if verbose {
		log.SetLevel("debug")
		return
	}
	log.SetLevel("info")
}
