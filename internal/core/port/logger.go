package port

// Fields - структурированные данные для записи в лог.
type Fields map[string]interface{}

// LoggerPort - контракт системы логирования. Ядро не знает о конкретной реализации.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)

	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields создает логгер с уже добавленными полями (trace_id, component и т.д.).
	WithFields(fields Fields) LoggerPort
}
