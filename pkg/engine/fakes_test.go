package engine

import (
	"context"
	"errors"
)

type fakeWindow struct {
	id      WindowID
	size    Size
	redraws int
}

func (w *fakeWindow) ID() WindowID    { return w.id }
func (w *fakeWindow) InnerSize() Size { return w.size }
func (w *fakeWindow) RequestRedraw()  { w.redraws++ }

type fakeLoop struct {
	size      Size
	createErr error
	created   []*fakeWindow
	attrs     []WindowAttributes
	exits     int
}

func (l *fakeLoop) CreateWindow(attrs WindowAttributes) (Window, error) {
	l.attrs = append(l.attrs, attrs)
	if l.createErr != nil {
		return nil, l.createErr
	}
	w := &fakeWindow{id: WindowID(len(l.created) + 1), size: l.size}
	l.created = append(l.created, w)
	return w, nil
}

func (l *fakeLoop) Exit()         { l.exits++ }
func (l *fakeLoop) Exiting() bool { return l.exits > 0 }

// fakePlatform reports the window's inner size and runs the task inline.
type fakePlatform struct {
	attrsErr   error
	firstErr   error
	firstCalls int
}

func (p *fakePlatform) WindowAttributes(base WindowAttributes) (WindowAttributes, error) {
	if p.attrsErr != nil {
		return base, p.attrsErr
	}
	base.Title = "test"
	return base, nil
}

func (p *fakePlatform) OnFirstWindow(ctx context.Context, w Window, task StartupTask) (Size, error) {
	p.firstCalls++
	if p.firstErr != nil {
		return w.InnerSize(), p.firstErr
	}
	return w.InnerSize(), task(ctx)
}

var errBoom = errors.New("boom")
