// internal/app/visual_test.go
package app

import (
	"testing"

	"go-magic-circle/internal/defs"
	"go-magic-circle/internal/event"
	"go-magic-circle/internal/gesture"
	"go-magic-circle/internal/utils"
)

type fakeSignals struct {
	sig gesture.Signal
}

func (f *fakeSignals) Latest() gesture.Signal { return f.sig }

type eventCounter struct {
	counts map[event.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[event.EventType]int)}
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
}

func newTestVisual(t *testing.T, signals SignalSource) *Visual {
	t.Helper()
	if err := defs.LoadOrnamentDefinitions(""); err != nil {
		t.Fatal(err)
	}
	return NewVisual(utils.NewPRNGService(11), signals, nil)
}

const dt = 1.0 / 60.0

func TestOpenHandFormsCircle(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Signal{Openness: gesture.Open, X: 0.5, Y: 0.5}}
	v := newTestVisual(t, signals)

	counter := newEventCounter()
	v.EventDispatcher.Subscribe(event.FormationFormed, counter)

	for i := 0; i < 5*60; i++ {
		v.Update(dt)
	}
	if v.Anim.Blend.Value <= 0.99 {
		t.Fatalf("после 5 секунд раскрытой ладони вес %v, ожидалось > 0.99", v.Anim.Blend.Value)
	}
	if counter.counts[event.FormationFormed] != 1 {
		t.Fatalf("событий FormationFormed %d, ожидалось ровно 1", counter.counts[event.FormationFormed])
	}
}

func TestClosedHandDisperses(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Signal{Openness: gesture.Open, X: 0.5, Y: 0.5}}
	v := newTestVisual(t, signals)

	counter := newEventCounter()
	v.EventDispatcher.Subscribe(event.FormationDispersed, counter)

	for i := 0; i < 5*60; i++ {
		v.Update(dt)
	}
	signals.sig = gesture.Signal{Openness: gesture.Closed, X: 0.5, Y: 0.5}
	for i := 0; i < 5*60; i++ {
		v.Update(dt)
	}
	if v.Anim.Blend.Value >= 0.01 {
		t.Fatalf("после 5 секунд кулака вес %v, ожидалось < 0.01", v.Anim.Blend.Value)
	}
	if counter.counts[event.FormationDispersed] != 1 {
		t.Fatalf("событий FormationDispersed %d, ожидалось ровно 1", counter.counts[event.FormationDispersed])
	}
}

func TestUnknownHoldsTarget(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Signal{Openness: gesture.Open, X: 0.5, Y: 0.5}}
	v := newTestVisual(t, signals)
	for i := 0; i < 60; i++ {
		v.Update(dt)
	}
	signals.sig = gesture.Neutral()
	for i := 0; i < 60; i++ {
		v.Update(dt)
	}
	if v.Anim.Blend.Target != 1 {
		t.Fatalf("нейтральный сигнал сбросил цель: %v", v.Anim.Blend.Target)
	}
}

func TestGestureChangedOnlyOnTransition(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Neutral()}
	v := newTestVisual(t, signals)

	counter := newEventCounter()
	v.EventDispatcher.Subscribe(event.GestureChanged, counter)

	for i := 0; i < 30; i++ {
		v.Update(dt)
	}
	if counter.counts[event.GestureChanged] != 0 {
		t.Fatalf("события без смены жеста: %d", counter.counts[event.GestureChanged])
	}

	signals.sig = gesture.Signal{Openness: gesture.Open, X: 0.2, Y: 0.2}
	for i := 0; i < 30; i++ {
		v.Update(dt)
	}
	if counter.counts[event.GestureChanged] != 1 {
		t.Fatalf("событий смены жеста %d, ожидалось 1", counter.counts[event.GestureChanged])
	}
}

func TestFlashSpawnedOnFormation(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Signal{Openness: gesture.Open, X: 0.5, Y: 0.5}}
	v := newTestVisual(t, signals)

	for len(v.ECS.Flashes) == 0 {
		v.Update(dt)
		if v.ECS.GameTime > 30 {
			t.Fatal("вспышка сборки так и не появилась")
		}
	}
}

func TestOrnamentsSpawned(t *testing.T) {
	signals := &fakeSignals{sig: gesture.Neutral()}
	v := newTestVisual(t, signals)
	if len(v.ECS.Orbits) != len(defs.OrnamentLibrary) {
		t.Fatalf("украшений %d, ожидалось %d", len(v.ECS.Orbits), len(defs.OrnamentLibrary))
	}
	for id := range v.ECS.Orbits {
		if _, ok := v.ECS.Positions[id]; !ok {
			t.Fatalf("украшение %d без позиции", id)
		}
		if _, ok := v.ECS.Renderables[id]; !ok {
			t.Fatalf("украшение %d без отображения", id)
		}
	}
}
