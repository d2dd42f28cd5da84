package schema

import (
	"fmt"

	"github.com/wippyai/tvm-codegen/errors"
)

// Direction is the origin of an incoming message.
type Direction uint8

const (
	Internal Direction = iota // sent by another account
	External                  // sent from outside the chain
)

func (d Direction) String() string {
	if d == External {
		return "external"
	}
	return "internal"
}

// Selector is the criterion that decides which receiver a message triggers.
//
// The set of implementations is closed: Binary, Empty, Comment,
// CommentFallback and Fallback exist once per Direction, BounceBinary and
// BounceFallback are direction-agnostic, giving twelve variants in total.
// Selectors are values; pointer forms are not selectors.
//
// Code that must handle every variant implements SelectorVisitor and calls
// VisitSelector, so adding a variant is a compile error everywhere it is
// not handled.
type Selector interface {
	fmt.Stringer
	isSelector()
}

// Binary matches a typed message by its 32-bit header.
type Binary struct {
	Type string // message type name
	Name string // payload parameter name
	Dir  Direction
}

// Empty matches a message with no body, or only a zero op code.
type Empty struct {
	Dir Direction
}

// Comment matches a text message with exactly this content.
type Comment struct {
	Text string
	Dir  Direction
}

// CommentFallback matches any text message not claimed by a Comment.
type CommentFallback struct {
	Name string
	Dir  Direction
}

// Fallback matches any message not claimed by another selector.
type Fallback struct {
	Name string
	Dir  Direction
}

// BounceBinary matches a bounced copy of a typed message.
type BounceBinary struct {
	Type    string
	Name    string
	Bounced bool // payload is the truncated bounced<Type> representation
}

// BounceFallback matches any bounced message.
type BounceFallback struct {
	Name string
}

func (Binary) isSelector()          {}
func (Empty) isSelector()           {}
func (Comment) isSelector()         {}
func (CommentFallback) isSelector() {}
func (Fallback) isSelector()        {}
func (BounceBinary) isSelector()    {}
func (BounceFallback) isSelector()  {}

func (s Binary) String() string          { return s.Dir.String() + "-binary" }
func (s Empty) String() string           { return s.Dir.String() + "-empty" }
func (s Comment) String() string         { return s.Dir.String() + "-comment" }
func (s CommentFallback) String() string { return s.Dir.String() + "-comment-fallback" }
func (s Fallback) String() string        { return s.Dir.String() + "-fallback" }
func (BounceBinary) String() string      { return "bounce-binary" }
func (BounceFallback) String() string    { return "bounce-fallback" }

// SelectorVisitor handles every selector shape. Direction-carrying shapes
// receive both of their variants through one method.
type SelectorVisitor[R any] interface {
	Binary(s Binary) R
	Empty(s Empty) R
	Comment(s Comment) R
	CommentFallback(s CommentFallback) R
	Fallback(s Fallback) R
	BounceBinary(s BounceBinary) R
	BounceFallback(s BounceFallback) R
}

// VisitSelector dispatches s to the matching visitor method.
// It fails only for a nil selector.
func VisitSelector[R any](s Selector, v SelectorVisitor[R]) (R, error) {
	switch s := s.(type) {
	case Binary:
		return v.Binary(s), nil
	case Empty:
		return v.Empty(s), nil
	case Comment:
		return v.Comment(s), nil
	case CommentFallback:
		return v.CommentFallback(s), nil
	case Fallback:
		return v.Fallback(s), nil
	case BounceBinary:
		return v.BounceBinary(s), nil
	case BounceFallback:
		return v.BounceFallback(s), nil
	}
	var zero R
	return zero, errors.UnknownSelector(errors.PhaseValidate, "", s)
}

// DirectionOf reports the direction a selector belongs to. Bounce selectors
// are only reachable through internal messages.
func DirectionOf(s Selector) Direction {
	switch s := s.(type) {
	case Binary:
		return s.Dir
	case Empty:
		return s.Dir
	case Comment:
		return s.Dir
	case CommentFallback:
		return s.Dir
	case Fallback:
		return s.Dir
	}
	return Internal
}

// IsBounce reports whether s handles bounced messages.
func IsBounce(s Selector) bool {
	switch s.(type) {
	case BounceBinary, BounceFallback:
		return true
	}
	return false
}
