// internal/gesture/client.go
package gesture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"time"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/utils"
)

// VisionClient отправляет кадр в внешний vision-API и разбирает ответ.
// Контракт API: JPEG-байты на входе, JSON {"openness","x","y"} на выходе.
// Схема принадлежит внешнему сервису, не этому модулю.
type VisionClient struct {
	endpoint string
	client   *http.Client
}

type visionResponse struct {
	Openness string  `json:"openness"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// NewVisionClient создаёт клиента для указанного endpoint.
// Таймаут одного запроса фиксирован: зависший запрос — это тоже ошибка,
// сводимая к нейтральному сигналу.
func NewVisionClient(endpoint string) *VisionClient {
	return &VisionClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: config.GestureTimeout * time.Millisecond,
		},
	}
}

// Detect кодирует кадр в JPEG, отправляет его и возвращает сигнал
func (c *VisionClient) Detect(frame image.Image) (Signal, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: 70}); err != nil {
		return Neutral(), fmt.Errorf("failed to encode frame: %w", err)
	}

	resp, err := c.client.Post(c.endpoint, "image/jpeg", &buf)
	if err != nil {
		return Neutral(), fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Neutral(), fmt.Errorf("vision API returned status %d", resp.StatusCode)
	}

	var vr visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return Neutral(), fmt.Errorf("failed to decode vision response: %w", err)
	}

	openness, err := ParseOpenness(vr.Openness)
	if err != nil {
		return Neutral(), fmt.Errorf("malformed vision response: %w", err)
	}

	sig := Signal{Openness: openness, X: utils.Clamp01(vr.X), Y: utils.Clamp01(vr.Y)}
	return sig, nil
}
