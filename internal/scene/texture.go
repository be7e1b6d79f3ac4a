package scene

import "image"

// Texture is a pre-rendered image shared by any number of buffers.
type Texture struct {
	img       image.Image
	destroyed bool
	destroy   Signal
}

// NewTexture wraps img. A nil image yields a zero-sized texture.
func NewTexture(img image.Image) *Texture {
	return &Texture{img: img}
}

// Image returns the backing image, or nil once the texture is destroyed.
func (t *Texture) Image() image.Image {
	if t == nil || t.destroyed {
		return nil
	}
	return t.img
}

// Size returns the pixel size of the texture.
func (t *Texture) Size() (int, int) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// OnDestroy registers fn to run when the texture is destroyed.
func (t *Texture) OnDestroy(fn func()) *Listener {
	return t.destroy.Connect(fn)
}

// Destroy invalidates the texture and notifies every subscriber once.
func (t *Texture) Destroy() {
	if t == nil || t.destroyed {
		return
	}
	t.destroyed = true
	t.destroy.Emit()
	t.img = nil
}

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool {
	return t != nil && t.destroyed
}
