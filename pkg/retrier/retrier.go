package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой паузой: ошибка попытки и время до следующей.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по числу попыток (только MaxElapsedTime).
	// Значение считает именно повторы: MaxRetries=2 означает до трех вызовов fn.
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}

// Constant конфиг с фиксированной паузой между попытками.
func Constant(interval time.Duration, maxRetries uint64, shouldRetry ShouldRetryFunc) Config {
	return Config{
		InitialInterval: interval,
		MaxInterval:     interval,
		Randomization:   0,
		Multiplier:      1,
		MaxRetries:      maxRetries,
		ShouldRetry:     shouldRetry,
	}
}
