package scene

// Transform is a clockwise rotation by a multiple of 90 degrees.
type Transform int

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
)

func (t Transform) String() string {
	switch t {
	case TransformNormal:
		return "normal"
	case Transform90:
		return "90"
	case Transform180:
		return "180"
	case Transform270:
		return "270"
	default:
		return "invalid"
	}
}

func (t Transform) swapsAxes() bool {
	return t == Transform90 || t == Transform270
}
