package assets

import (
	"fmt"

	"dropshot/internal/audio"
	"dropshot/internal/engine"
)

// Kind tags what a queued item loads into.
type Kind int

const (
	KindSound Kind = iota
)

// Item is one asset to load: a key gameplay code refers to it by, and the
// file path it comes from.
type Item struct {
	Key  string
	Kind Kind
	Path string
}

// Loader works through its queue one item per Step call. Loading happens on
// the render thread (raylib requires it), so the game steps the loader once
// per frame while drawing the loading screen.
//
// Readiness is one-shot: Ready fires after the final item loads, and only if
// every item loaded. A single failure marks the whole load failed and
// readiness is never signalled.
type Loader struct {
	Ready engine.Event

	OnProgress func(loaded, total int, path string)
	OnError    func(path string, err error)

	queue  []Item
	loaded int
	ready  bool
	err    error
}

func NewLoader(items []Item) *Loader {
	return &Loader{queue: items}
}

// Step loads the next queued item. It is a no-op once the loader is done or
// failed.
func (l *Loader) Step() {
	if l.ready || l.err != nil {
		return
	}
	if len(l.queue) == 0 {
		l.ready = true
		l.Ready.Invoke()
		return
	}

	item := l.queue[l.loaded]
	var err error
	switch item.Kind {
	case KindSound:
		err = audio.Load(item.Key, item.Path)
	default:
		err = fmt.Errorf("assets: unknown kind %d for %s", item.Kind, item.Path)
	}

	if err != nil {
		l.err = err
		if l.OnError != nil {
			l.OnError(item.Path, err)
		}
		return
	}

	l.loaded++
	if l.OnProgress != nil {
		l.OnProgress(l.loaded, len(l.queue), item.Path)
	}

	if l.loaded == len(l.queue) {
		l.ready = true
		l.Ready.Invoke()
	}
}

// IsReady reports whether every asset loaded.
func (l *Loader) IsReady() bool {
	return l.ready
}

// Err returns the failure that stopped the load, if any.
func (l *Loader) Err() error {
	return l.err
}

// Progress returns load completion in [0,1].
func (l *Loader) Progress() float32 {
	if len(l.queue) == 0 {
		return 1
	}
	return float32(l.loaded) / float32(len(l.queue))
}
