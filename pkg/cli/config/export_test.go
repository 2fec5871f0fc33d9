package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewThresholdsForTest creates a Thresholds config for testing purposes
func NewThresholdsForTest(path string) *Thresholds {
	return &Thresholds{path: path}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, path string) *Repository {
	return &Repository{
		backend: backend,
		path:    path,
	}
}
