// Package responsive holds the breakpoint registry and responsive editing
// session of the canvas editor: which breakpoints exist, which one is being
// edited, and the preview / multi-breakpoint view flags. Every mutation is
// written through the injected store synchronously, so there is no separate
// save step. Pure style resolution lives in the style subpackage; this
// package only orchestrates it.
package responsive

import (
	"errors"
	"fmt"

	"github.com/framefold/responsive/storage"
	"github.com/framefold/responsive/style"
)

var (
	// ErrNotFound reports a breakpoint ID absent from the registry. The
	// registry state is untouched when it is returned; interactive callers
	// may ignore it.
	ErrNotFound = errors.New("breakpoint not found")

	// ErrDefaultBreakpoint reports an operation refused because it targeted
	// the default breakpoint. The registry state is untouched.
	ErrDefaultBreakpoint = errors.New("default breakpoint cannot be deleted")
)

// Session is the process-wide responsive editing state. It is not safe for
// concurrent use; the host editor drives it from a single UI thread.
type Session struct {
	store storage.Store

	breakpoints []style.Breakpoint
	activeID    string
	preview     bool
	multiView   bool
}

// record is the single persisted document. The whole record is rewritten on
// every mutation.
type record struct {
	Breakpoints []style.Breakpoint `toml:"breakpoints"`
	ActiveID    string             `toml:"active_id"`
	Preview     bool               `toml:"preview"`
	MultiView   bool               `toml:"multi_view"`
}

// NewSession loads the persisted session from store, or seeds the standard
// desktop/tablet/mobile registry when no record exists yet.
func NewSession(store storage.Store) (*Session, error) {
	s := &Session{store: store}

	var rec record
	ok, err := store.Load(&rec)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok || len(rec.Breakpoints) == 0 {
		s.seed()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.breakpoints = rec.Breakpoints
	s.activeID = rec.ActiveID
	s.preview = rec.Preview
	s.multiView = rec.MultiView
	return s, nil
}

func (s *Session) seed() {
	s.breakpoints = SeedBreakpoints()
	s.activeID = style.DefaultOf(s.breakpoints).ID
	s.preview = false
	s.multiView = false
}

func (s *Session) save() error {
	err := s.store.Save(record{
		Breakpoints: s.breakpoints,
		ActiveID:    s.activeID,
		Preview:     s.preview,
		MultiView:   s.multiView,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Reload re-reads the persisted record, picking up changes written by
// another process (see storage.WatchFile). A record that disappeared
// underneath us leaves the in-memory state untouched.
func (s *Session) Reload() error {
	var rec record
	ok, err := s.store.Load(&rec)
	if err != nil {
		return fmt.Errorf("reload session: %w", err)
	}
	if !ok || len(rec.Breakpoints) == 0 {
		return nil
	}
	s.breakpoints = rec.Breakpoints
	s.activeID = rec.ActiveID
	s.preview = rec.Preview
	s.multiView = rec.MultiView
	return nil
}

// Reset replaces the registry with the seed set, makes the seed default
// active, and clears the preview and multi-view flags.
func (s *Session) Reset() error {
	s.seed()
	return s.save()
}

// Preview reports whether preview mode is on.
func (s *Session) Preview() bool { return s.preview }

// SetPreview toggles preview mode.
func (s *Session) SetPreview(on bool) error {
	s.preview = on
	return s.save()
}

// MultiView reports whether the multi-breakpoint view is on.
func (s *Session) MultiView() bool { return s.multiView }

// SetMultiView toggles the multi-breakpoint view.
func (s *Session) SetMultiView(on bool) error {
	s.multiView = on
	return s.save()
}
