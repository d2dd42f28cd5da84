package schema

import (
	"strconv"

	"github.com/wippyai/tvm-codegen/errors"
)

// Validate checks the receiver invariants of every contract in g:
//   - at most one empty, comment-fallback and fallback selector per direction
//   - at most one bounce-fallback selector
//   - binary selectors unique by (direction, message type)
//   - bounce-binary selectors unique by message type
//   - comment literals unique per direction
//   - every message type referenced by a selector exists
//
// Header presence is not checked here; a missing header is a resolver
// defect reported during router generation.
func Validate(g *Graph) error {
	for _, t := range g.Contracts() {
		if err := validateReceivers(g, t); err != nil {
			return err
		}
	}
	return nil
}

type slotKey struct {
	key  string
	kind string
	dir  Direction
}

type slotVisitor struct{}

func (slotVisitor) Binary(s Binary) slotKey { return slotKey{kind: "binary", dir: s.Dir, key: s.Type} }
func (slotVisitor) Empty(s Empty) slotKey   { return slotKey{kind: "empty", dir: s.Dir} }
func (slotVisitor) Comment(s Comment) slotKey {
	return slotKey{kind: "comment", dir: s.Dir, key: s.Text}
}
func (slotVisitor) CommentFallback(s CommentFallback) slotKey {
	return slotKey{kind: "comment-fallback", dir: s.Dir}
}
func (slotVisitor) Fallback(s Fallback) slotKey { return slotKey{kind: "fallback", dir: s.Dir} }
func (slotVisitor) BounceBinary(s BounceBinary) slotKey {
	return slotKey{kind: "bounce-binary", key: s.Type}
}
func (slotVisitor) BounceFallback(BounceFallback) slotKey { return slotKey{kind: "bounce-fallback"} }

func validateReceivers(g *Graph, t *TypeDescription) error {
	seen := make(map[slotKey]struct{}, len(t.Receivers))
	for i, r := range t.Receivers {
		slot, err := VisitSelector[slotKey](r.Selector, slotVisitor{})
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{t.Name, "receivers", strconv.Itoa(i)}
			}
			return err
		}
		if _, dup := seen[slot]; dup {
			e := errors.DuplicateSelector(t.Name, r.Selector.String())
			if slot.key != "" {
				e.Detail = strconv.Quote(slot.key) + " declared more than once"
			}
			return e
		}
		seen[slot] = struct{}{}

		if slot.kind == "binary" || slot.kind == "bounce-binary" {
			if _, ok := g.Type(slot.key); !ok {
				e := errors.NotFound(errors.PhaseValidate, "message type", slot.key)
				e.Path = []string{t.Name, "receivers", strconv.Itoa(i)}
				return e
			}
		}
	}
	return nil
}
