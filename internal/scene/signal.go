package scene

// Signal is a list of callbacks fired when a resource goes away.
type Signal struct {
	listeners []*Listener
}

// Listener is the cancellation handle returned by Signal.Connect.
type Listener struct {
	signal *Signal
	fn     func()
}

// Connect registers fn and returns a handle that can remove it again.
func (s *Signal) Connect(fn func()) *Listener {
	l := &Listener{signal: s, fn: fn}
	s.listeners = append(s.listeners, l)
	return l
}

// Emit calls every connected listener. Listeners removed while emitting are
// skipped; listeners added while emitting are not called.
func (s *Signal) Emit() {
	snapshot := append([]*Listener(nil), s.listeners...)
	for _, l := range snapshot {
		if l.signal == nil {
			continue
		}
		l.fn()
	}
}

// Len returns the number of connected listeners.
func (s *Signal) Len() int {
	return len(s.listeners)
}

// Remove disconnects the listener. It is safe to call on a nil or already
// removed listener.
func (l *Listener) Remove() {
	if l == nil || l.signal == nil {
		return
	}
	s := l.signal
	l.signal = nil
	for i, other := range s.listeners {
		if other == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Connected reports whether the listener is still attached to its signal.
func (l *Listener) Connected() bool {
	return l != nil && l.signal != nil
}
