package utils

import "time"

// Timer mide el tiempo total del programa y el de cada etapa (Lap reinicia
// el tramo parcial sin tocar el inicio global).
type Timer struct {
	start time.Time
	lap   time.Time
}

func NewTimer() *Timer {
	now := time.Now()
	return &Timer{start: now, lap: now}
}

// Elapsed devuelve el tiempo desde la creación del timer.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Lap devuelve el tiempo desde el último Lap (o desde la creación) y
// reinicia el tramo parcial.
func (t *Timer) Lap() time.Duration {
	now := time.Now()
	d := now.Sub(t.lap)
	t.lap = now
	return d
}
