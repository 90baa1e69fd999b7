package rop

import "fmt"

// Tag identifies the active variant of a two-variant union.
type Tag uint8

const (
	TagNothing Tag = iota
	TagSome
	TagErr
	TagOk
)

func (t Tag) String() string {
	switch t {
	case TagNothing:
		return "Nothing"
	case TagSome:
		return "Some"
	case TagErr:
		return "Err"
	case TagOk:
		return "Ok"
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Tagged is implemented by values that expose their variant tag.
type Tagged interface {
	// Tag returns the active variant, fixed at construction
	Tag() Tag
}

// PayloadProvider exposes the payload of the active variant for case dispatch.
type PayloadProvider interface {
	// Kind returns the payload of the active variant (nil for Nothing)
	Kind() any
}

// Variant is the capability set shared by Option and Result. It lets
// callers dispatch on either type without knowing its payload type.
type Variant interface {
	Tagged
	PayloadProvider
	fmt.Stringer
}

// Present reports whether v is in its value-carrying variant (Some or Ok).
func Present(v Variant) bool {
	switch v.Tag() {
	case TagSome, TagOk:
		return true
	}
	return false
}
