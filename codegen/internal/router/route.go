package router

import (
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/opcode"
)

// ExitCellUnderflow is the TVM exit code for reading past the end of a slice.
const ExitCellUnderflow = 9

// Decision is the outcome of evaluating a Plan against one message body.
type Decision struct {
	Branch *Branch // nil when no receiver ran

	// Payload is the slice handed to a fallback handler, or the slice left
	// after a typed arm read its header. Nil otherwise.
	Payload *cell.Slice

	// ExitCode is nonzero when the router itself throws.
	ExitCode int

	Handled bool
}

// Route evaluates the same decision procedure Lower emits. body is the
// message body cell; bounced mirrors msg_bounced and is ignored for
// external plans.
func (p *Plan) Route(body *cell.Cell, bounced bool) Decision {
	if body == nil {
		body = cell.BeginCell().EndCell()
	}
	in := body.BeginParse()

	if bounced && p.HandlesBounce() {
		return p.routeBounced(in)
	}

	op := preloadOp(in, OpBits)

	for i := range p.Binary {
		br := &p.Binary[i]
		if op == uint64(br.Header) {
			return Decision{Branch: br, Handled: true, Payload: afterHeader(in)}
		}
	}

	if p.Empty != nil && op == 0 && in.BitsLeft() <= OpBits {
		return Decision{Branch: p.Empty, Handled: true}
	}

	if op == 0 {
		if len(p.Comments) > 0 {
			textOp := opcode.SliceHash(body)
			for i := range p.Comments {
				br := &p.Comments[i]
				if br.Hash == textOp {
					return Decision{Branch: br, Handled: true}
				}
			}
		}
		if p.CommentFallback != nil && in.BitsLeft() >= opcode.CommentPrefixBits {
			return Decision{Branch: p.CommentFallback, Handled: true, Payload: afterHeader(in)}
		}
	}

	if p.Fallback != nil {
		return Decision{Branch: p.Fallback, Handled: true, Payload: in}
	}
	return Decision{}
}

func (p *Plan) routeBounced(in *cell.Slice) Decision {
	if !p.HasBounceArms() {
		return Decision{Handled: true}
	}
	if _, err := in.LoadUInt(OpBits); err != nil {
		return Decision{ExitCode: ExitCellUnderflow}
	}

	if len(p.Bounce) > 0 {
		var op uint64
		if in.BitsLeft() >= p.BounceOpGuard {
			v, err := preload(in)
			if err != nil {
				// The legacy guard admits 30 or 31 remaining bits.
				return Decision{ExitCode: ExitCellUnderflow}
			}
			op = v
		}
		for i := range p.Bounce {
			br := &p.Bounce[i]
			if op == uint64(br.Header) {
				return Decision{Branch: br, Handled: true, Payload: afterHeader(in)}
			}
		}
	}

	if p.BounceFallback != nil {
		return Decision{Branch: p.BounceFallback, Handled: true, Payload: in}
	}
	return Decision{Handled: true}
}

func preloadOp(in *cell.Slice, guard uint) uint64 {
	if in.BitsLeft() < guard {
		return 0
	}
	op, err := preload(in)
	if err != nil {
		return 0
	}
	return op
}

// preload reads the 32-bit header without consuming it.
func preload(in *cell.Slice) (uint64, error) {
	return in.Copy().LoadUInt(OpBits)
}

// afterHeader returns a copy of in with the 32-bit header consumed.
func afterHeader(in *cell.Slice) *cell.Slice {
	rest := in.Copy()
	if _, err := rest.LoadUInt(OpBits); err != nil {
		return nil
	}
	return rest
}
