//go:build !linux

package platform

// NewBackend reports that no window-system backend exists here.
func NewBackend(string) (Backend, error) {
	return nil, ErrUnsupported
}
