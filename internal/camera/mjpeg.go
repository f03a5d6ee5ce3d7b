// internal/camera/mjpeg.go
package camera

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"sync"

	"go-magic-circle/internal/config"
)

// MJPEG читает multipart-поток (mjpeg-streamer и большинство IP-камер
// отдают именно его) и держит последний декодированный кадр. Grab
// возвращает копию последнего кадра, уже ужатую до рабочего разрешения.
type MJPEG struct {
	url string

	mu     sync.RWMutex
	latest *image.RGBA

	stop chan struct{}
	done chan struct{}
}

var ErrNoFrame = errors.New("no frame received yet")

func NewMJPEG(url string) *MJPEG {
	return &MJPEG{
		url:  url,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start подключается к потоку и начинает читать кадры в фоне
func (m *MJPEG) Start() error {
	resp, err := http.Get(m.url)
	if err != nil {
		return fmt.Errorf("failed to connect to mjpeg stream: %w", err)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/x-mixed-replace" {
		resp.Body.Close()
		return fmt.Errorf("unexpected stream content type %q", resp.Header.Get("Content-Type"))
	}

	reader := multipart.NewReader(resp.Body, params["boundary"])
	go func() {
		defer close(m.done)
		defer resp.Body.Close()
		for {
			select {
			case <-m.stop:
				return
			default:
			}
			part, err := reader.NextPart()
			if err != nil {
				log.Printf("mjpeg stream ended: %v", err)
				return
			}
			img, err := jpeg.Decode(part)
			part.Close()
			if err != nil {
				// Битый кадр не фатален, ждём следующий
				continue
			}
			scaled := Downscale(img, config.FrameWidth, config.FrameHeight)
			m.mu.Lock()
			m.latest = scaled
			m.mu.Unlock()
		}
	}()
	return nil
}

// Stop останавливает чтение потока
func (m *MJPEG) Stop() {
	close(m.stop)
	<-m.done
}

// Grab возвращает последний принятый кадр
func (m *MJPEG) Grab() (*image.RGBA, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == nil {
		return nil, ErrNoFrame
	}
	return m.latest, nil
}
