// internal/state/options.go
package state

// Options — настройки запуска визуала, собранные из флагов
type Options struct {
	Endpoint   string // vision-API; пусто — демо-режим с циклом жестов
	StreamURL  string // mjpeg-камера; пусто — синтетические кадры
	ReplayPath string // лог жестов для воспроизведения
	Seed       int64  // сид генератора; 0 — от текущего времени
}
