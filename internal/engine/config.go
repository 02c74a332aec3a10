package engine

import "time"

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно мира. От него детерминированно зависят
	// все чанки, враги и их мозги.
	Seed int64
}

// NewConfig создает конфиг по умолчанию (случайный сид).
// Явный сид (флаг -seed) перекрывает его в main.
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
	}
}
