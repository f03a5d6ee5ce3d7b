// internal/gesture/replay.go
package gesture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"time"
)

// replayRecord — одна строка лога жестов (JSON Lines)
type replayRecord struct {
	T        float64 `json:"t"` // секунды от начала записи
	Openness string  `json:"openness"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Replay воспроизводит записанный лог жестов вместо живого
// распознавания. Кадр игнорируется; сигнал выбирается по времени,
// прошедшему с запуска, запись зациклена. Позволяет гонять визуал без
// vision-endpoint и получать воспроизводимые демо.
type Replay struct {
	records []replayRecord
	total   float64
	start   time.Time
}

// LoadReplay читает лог жестов из файла
func LoadReplay(path string) (*Replay, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gesture log: %w", err)
	}
	defer file.Close()

	var records []replayRecord
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec replayRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse gesture log line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gesture log: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("gesture log %s is empty", path)
	}

	total := records[len(records)-1].T
	if total <= 0 {
		total = 1
	}
	return &Replay{records: records, total: total, start: time.Now()}, nil
}

// Detect возвращает запись, соответствующая текущему моменту записи
func (r *Replay) Detect(_ image.Image) (Signal, error) {
	elapsed := time.Since(r.start).Seconds()
	return r.at(elapsed), nil
}

// at выбирает последнюю запись с отметкой не позже t (по модулю
// длительности записи)
func (r *Replay) at(t float64) Signal {
	for t >= r.total {
		t -= r.total
	}
	current := r.records[0]
	for _, rec := range r.records {
		if rec.T > t {
			break
		}
		current = rec
	}
	openness, err := ParseOpenness(current.Openness)
	if err != nil {
		return Neutral()
	}
	return Signal{Openness: openness, X: current.X, Y: current.Y}
}
