package opcode

import (
	"github.com/wippyai/tvm-codegen/errors"
)

// HeaderSource looks up allocated message headers by type name.
// *schema.Graph satisfies it.
type HeaderSource interface {
	Header(name string) (uint32, bool)
}

// Resolver maps selectors to the numeric values the router compares against.
type Resolver interface {
	// Header returns the 32-bit header of a message type. A missing header
	// is a resolver defect reported as KindMissingHeader.
	Header(contract, typeName string) (uint32, error)

	// Comment returns the pseudo-opcode of a text comment.
	Comment(text string) (Hash, error)

	// MethodID returns the get-method id of a getter.
	MethodID(name string) uint32
}

type resolver struct {
	headers HeaderSource
	cache   map[string]Hash
}

// NewResolver returns a Resolver backed by headers. Comment hashes are
// memoized per resolver.
func NewResolver(headers HeaderSource) Resolver {
	return &resolver{headers: headers, cache: make(map[string]Hash)}
}

func (r *resolver) Header(contract, typeName string) (uint32, error) {
	h, ok := r.headers.Header(typeName)
	if !ok {
		return 0, errors.MissingHeader(errors.PhaseRoute, contract, typeName)
	}
	return h, nil
}

func (r *resolver) Comment(text string) (Hash, error) {
	if h, ok := r.cache[text]; ok {
		return h, nil
	}
	h, err := CommentHash(text)
	if err != nil {
		return Hash{}, err
	}
	r.cache[text] = h
	return h, nil
}

func (r *resolver) MethodID(name string) uint32 {
	return MethodID(name)
}
