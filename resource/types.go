package resource

type Type uint8

const (
	TypeSkin Type = iota
	TypeSprite
	TypeWall
	TypePic
	TypeSky
)

func (t Type) String() string {
	switch t {
	case TypeSkin:
		return "Type(Skin)"
	case TypeSprite:
		return "Type(Sprite)"
	case TypeWall:
		return "Type(Wall)"
	case TypePic:
		return "Type(Pic)"
	case TypeSky:
		return "Type(Sky)"
	}
	return "Type(UNKNOWN)"
}

// keyed reports whether images of this type honour the transparent colour.
func (t Type) keyed() bool {
	return t != TypeWall && t != TypeSky
}
