// internal/gesture/poller.go
package gesture

import (
	"sync"
	"sync/atomic"
	"time"

	"go-magic-circle/internal/camera"
)

// Poller опрашивает источник жестов с фиксированным интервалом.
// Одновременно в полёте не бывает больше одного запроса: если
// предыдущий ещё не завершился, очередной тик просто пропускается.
// Любая ошибка (камера, сеть, кривой ответ) глотается на этой границе
// и превращается в нейтральный сигнал — анимация от сбоев распознавания
// не падает никогда.
//
// Latest читается на потоке отрисовки; применяется всегда только
// последний завершившийся результат, поэтому устаревшие ответы не
// могут перезаписать более свежие задним числом.
type Poller struct {
	source Source
	frames camera.FrameSource

	mu     sync.Mutex
	latest Signal

	busy    atomic.Bool
	stop    chan struct{}
	done    chan struct{}
	started bool

	interval time.Duration
}

func NewPoller(source Source, frames camera.FrameSource, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		frames:   frames,
		latest:   Neutral(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		interval: interval,
	}
}

// Start запускает цикл опроса в фоне
func (p *Poller) Start() {
	if p.started {
		return
	}
	p.started = true
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}

// Stop останавливает цикл опроса
func (p *Poller) Stop() {
	if !p.started {
		return
	}
	close(p.stop)
	<-p.done
}

// Latest возвращает последний завершившийся результат распознавания
func (p *Poller) Latest() Signal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// tick запускает один запрос, если предыдущий уже завершился
func (p *Poller) tick() {
	if !p.busy.CompareAndSwap(false, true) {
		return // предыдущий запрос ещё в полёте
	}
	go func() {
		defer p.busy.Store(false)
		p.store(p.pollOnce())
	}()
}

// pollOnce выполняет один цикл кадр→распознавание.
// Возвращает нейтральный сигнал при любой ошибке.
func (p *Poller) pollOnce() Signal {
	frame, err := p.frames.Grab()
	if err != nil {
		return Neutral()
	}
	sig, err := p.source.Detect(frame)
	if err != nil {
		return Neutral()
	}
	return sig
}

func (p *Poller) store(sig Signal) {
	p.mu.Lock()
	p.latest = sig
	p.mu.Unlock()
}
