package router

import (
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

const (
	// OpBits is the width of a message header.
	OpBits = 32

	// DefaultBounceOpGuard is the number of bits that must remain after the
	// bounce prefix before the bounced header is read.
	DefaultBounceOpGuard = 32

	// LegacyBounceOpGuard reproduces the historical 30-bit check.
	LegacyBounceOpGuard = 30
)

// Options tune router generation.
type Options struct {
	// BounceOpGuard overrides DefaultBounceOpGuard when nonzero.
	BounceOpGuard uint
}

// BranchKind identifies a routing arm.
type BranchKind uint8

const (
	BranchBounceBinary BranchKind = iota
	BranchBounceFallback
	BranchBinary
	BranchEmpty
	BranchComment
	BranchCommentFallback
	BranchFallback
)

func (k BranchKind) String() string {
	switch k {
	case BranchBounceBinary:
		return "bounce-binary"
	case BranchBounceFallback:
		return "bounce-fallback"
	case BranchBinary:
		return "binary"
	case BranchEmpty:
		return "empty"
	case BranchComment:
		return "comment"
	case BranchCommentFallback:
		return "comment-fallback"
	case BranchFallback:
		return "fallback"
	}
	return "unknown"
}

// Branch is one arm of the router.
type Branch struct {
	Selector schema.Selector
	Handler  string
	Type     string // message type of binary arms
	Text     string // literal of comment arms
	Hash     opcode.Hash
	Header   uint32
	Kind     BranchKind
	Bounced  bool // bounce arm decodes the truncated payload
}

// Plan is the ordered decision procedure of one router. Arms are evaluated
// in field order: bounce arms, binary, empty, comments, comment fallback,
// fallback.
type Plan struct {
	BounceFallback  *Branch
	Empty           *Branch
	CommentFallback *Branch
	Fallback        *Branch
	Contract        string
	Bounce          []Branch
	Binary          []Branch
	Comments        []Branch
	BounceOpGuard   uint
	Direction       schema.Direction
}

// Name returns the generated router function name.
func (p *Plan) Name() string {
	return names.Router(p.Contract, p.Direction)
}

// HandlesBounce reports whether the router has a bounce section.
func (p *Plan) HandlesBounce() bool {
	return p.Direction == schema.Internal
}

// HasBounceArms reports whether any bounce receiver exists.
func (p *Plan) HasBounceArms() bool {
	return len(p.Bounce) > 0 || p.BounceFallback != nil
}

// Branches returns every arm in evaluation order.
func (p *Plan) Branches() []Branch {
	var out []Branch
	out = append(out, p.Bounce...)
	if p.BounceFallback != nil {
		out = append(out, *p.BounceFallback)
	}
	out = append(out, p.Binary...)
	if p.Empty != nil {
		out = append(out, *p.Empty)
	}
	out = append(out, p.Comments...)
	if p.CommentFallback != nil {
		out = append(out, *p.CommentFallback)
	}
	if p.Fallback != nil {
		out = append(out, *p.Fallback)
	}
	return out
}

// Build collects the receivers of contract that belong to dir into a Plan.
// Bounce receivers are only routed internally.
func Build(contract *schema.TypeDescription, dir schema.Direction, resolver opcode.Resolver, opts Options) (*Plan, error) {
	p := &Plan{
		Contract:      contract.Name,
		Direction:     dir,
		BounceOpGuard: DefaultBounceOpGuard,
	}
	if opts.BounceOpGuard != 0 {
		p.BounceOpGuard = opts.BounceOpGuard
	}

	b := &planner{
		plan:     p,
		resolver: resolver,
		texts:    make(map[opcode.Hash]string),
		headers:  make(map[uint32]string),
		bounces:  make(map[uint32]string),
	}
	for _, r := range contract.Receivers {
		if r.Selector == nil {
			return nil, errors.UnknownSelector(errors.PhaseRoute, contract.Name, r.Selector)
		}
		if schema.IsBounce(r.Selector) {
			if dir != schema.Internal {
				continue
			}
		} else if schema.DirectionOf(r.Selector) != dir {
			continue
		}
		b.sel = r.Selector
		armErr, err := schema.VisitSelector[error](r.Selector, b)
		if err != nil {
			return nil, err
		}
		if armErr != nil {
			return nil, armErr
		}
	}
	return p, nil
}

type planner struct {
	plan     *Plan
	resolver opcode.Resolver
	texts    map[opcode.Hash]string
	headers  map[uint32]string // header -> message type, binary arms
	bounces  map[uint32]string // header -> message type, bounce arms
	sel      schema.Selector
}

func (b *planner) branch(kind BranchKind) (Branch, error) {
	handler, err := names.Receiver(b.plan.Contract, b.sel)
	if err != nil {
		return Branch{}, err
	}
	return Branch{Kind: kind, Selector: b.sel, Handler: handler}, nil
}

func (b *planner) header(kind BranchKind, typeName string, seen map[uint32]string) (Branch, error) {
	br, err := b.branch(kind)
	if err != nil {
		return br, err
	}
	h, err := b.resolver.Header(b.plan.Contract, typeName)
	if err != nil {
		return br, err
	}
	if other, ok := seen[h]; ok {
		return br, errors.New(errors.PhaseRoute, errors.KindHeaderCollision).
			Path(b.plan.Contract).
			Type(typeName).
			Selector(b.sel.String()).
			Value(h).
			Detail("header %s already routes to %s", opcode.FormatHeader(h), other).
			Build()
	}
	seen[h] = typeName
	br.Type = typeName
	br.Header = h
	return br, nil
}

func (b *planner) single(slot **Branch, kind BranchKind) error {
	if *slot != nil {
		return errors.DuplicateSelector(b.plan.Contract, b.sel.String())
	}
	br, err := b.branch(kind)
	if err != nil {
		return err
	}
	*slot = &br
	return nil
}

func (b *planner) Binary(s schema.Binary) error {
	for _, existing := range b.plan.Binary {
		if existing.Type == s.Type {
			return errors.DuplicateSelector(b.plan.Contract, s.String())
		}
	}
	br, err := b.header(BranchBinary, s.Type, b.headers)
	if err != nil {
		return err
	}
	b.plan.Binary = append(b.plan.Binary, br)
	return nil
}

func (b *planner) Empty(schema.Empty) error {
	return b.single(&b.plan.Empty, BranchEmpty)
}

func (b *planner) Comment(s schema.Comment) error {
	h, err := b.resolver.Comment(s.Text)
	if err != nil {
		return err
	}
	if other, ok := b.texts[h]; ok {
		if other == s.Text {
			return errors.DuplicateSelector(b.plan.Contract, s.String())
		}
		return errors.HashCollision(b.plan.Contract, other, s.Text)
	}
	b.texts[h] = s.Text

	br, err := b.branch(BranchComment)
	if err != nil {
		return err
	}
	br.Text = s.Text
	br.Hash = h
	b.plan.Comments = append(b.plan.Comments, br)
	return nil
}

func (b *planner) CommentFallback(schema.CommentFallback) error {
	return b.single(&b.plan.CommentFallback, BranchCommentFallback)
}

func (b *planner) Fallback(schema.Fallback) error {
	return b.single(&b.plan.Fallback, BranchFallback)
}

func (b *planner) BounceBinary(s schema.BounceBinary) error {
	for _, existing := range b.plan.Bounce {
		if existing.Type == s.Type {
			return errors.DuplicateSelector(b.plan.Contract, s.String())
		}
	}
	br, err := b.header(BranchBounceBinary, s.Type, b.bounces)
	if err != nil {
		return err
	}
	br.Bounced = s.Bounced
	b.plan.Bounce = append(b.plan.Bounce, br)
	return nil
}

func (b *planner) BounceFallback(schema.BounceFallback) error {
	return b.single(&b.plan.BounceFallback, BranchBounceFallback)
}
