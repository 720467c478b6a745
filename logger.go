package includefile

import (
	charmlog "github.com/charmbracelet/log"
)

// Logger принимает готовую строку сообщения. Сбой логирования не должен
// прерывать разрешение файла, поэтому паника внутри Logger подавляется.
type Logger func(msg string)

// DefaultLogger направляет сообщения в журнал charmbracelet/log по умолчанию.
func DefaultLogger() Logger {
	return NewLogger(charmlog.Default())
}

// NewLogger оборачивает готовый журнал charmbracelet/log.
func NewLogger(l *charmlog.Logger) Logger {
	return func(msg string) {
		l.Info(msg)
	}
}
