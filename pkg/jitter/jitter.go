// Package jitter добавляет случайность в интервалы повторов,
// чтобы фоновые ретраи не приходили синхронно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultFactor — стандартный коэффициент джиттера (50%).
const DefaultFactor = 0.5

// Duration возвращает длительность в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// Backoff вычисляет экспоненциальную задержку с джиттером.
// base — начальная задержка, max — потолок, attempt — номер попытки (с нуля).
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}

	return Duration(backoff, factor)
}
