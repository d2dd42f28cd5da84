package schema

import (
	"fmt"
	"strings"
)

// RefKind distinguishes the shapes a TypeRef can take.
type RefKind uint8

const (
	RefNamed   RefKind = iota // a named type, possibly optional
	RefMap                    // map<Key, Value>
	RefVoid                   // no value
	RefNull                   // the null literal type
	RefBounced                // bounced<Name>, the truncated bounce payload
)

// TypeRef refers to a type from a field, parameter or return position.
type TypeRef struct {
	Name     string
	Key      string
	Value    string
	Kind     RefKind
	Optional bool
}

// Ref returns a reference to the named type.
func Ref(name string) TypeRef { return TypeRef{Kind: RefNamed, Name: name} }

// OptionalRef returns a nullable reference to the named type.
func OptionalRef(name string) TypeRef { return TypeRef{Kind: RefNamed, Name: name, Optional: true} }

// MapOf returns a map type reference.
func MapOf(key, value string) TypeRef { return TypeRef{Kind: RefMap, Key: key, Value: value} }

// Void returns the void type reference.
func Void() TypeRef { return TypeRef{Kind: RefVoid} }

// BouncedRef returns a bounced<name> reference.
func BouncedRef(name string) TypeRef { return TypeRef{Kind: RefBounced, Name: name} }

func (r TypeRef) String() string {
	switch r.Kind {
	case RefMap:
		return "map<" + r.Key + ", " + r.Value + ">"
	case RefVoid:
		return "void"
	case RefNull:
		return "null"
	case RefBounced:
		return "bounced<" + r.Name + ">"
	}
	if r.Optional {
		return r.Name + "?"
	}
	return r.Name
}

// ParseTypeRef parses the textual form produced by TypeRef.String.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return TypeRef{}, fmt.Errorf("empty type reference")
	case s == "void":
		return Void(), nil
	case s == "null":
		return TypeRef{Kind: RefNull}, nil
	case strings.HasPrefix(s, "map<") && strings.HasSuffix(s, ">"):
		key, value, ok := strings.Cut(s[len("map<"):len(s)-1], ",")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return TypeRef{}, fmt.Errorf("malformed map type %q", s)
		}
		return MapOf(key, value), nil
	case strings.HasPrefix(s, "bounced<") && strings.HasSuffix(s, ">"):
		name := strings.TrimSpace(s[len("bounced<") : len(s)-1])
		if !isIdent(name) {
			return TypeRef{}, fmt.Errorf("malformed bounced type %q", s)
		}
		return BouncedRef(name), nil
	}
	optional := strings.HasSuffix(s, "?")
	name := strings.TrimSuffix(s, "?")
	if !isIdent(name) {
		return TypeRef{}, fmt.Errorf("malformed type name %q", s)
	}
	return TypeRef{Kind: RefNamed, Name: name, Optional: optional}, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
