package opcode

import (
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/sigurn/crc16"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/errors"
)

const (
	// MaxCellBits is the data capacity of one ordinary cell.
	MaxCellBits = 1023

	// CommentPrefixBits is the width of the zero tag that marks a text comment.
	CommentPrefixBits = 32

	// MaxCommentBytes is the longest comment that fits next to its tag.
	MaxCommentBytes = (MaxCellBits - CommentPrefixBits) / 8

	// BouncePrefix is the tag prepended to every bounced message body.
	BouncePrefix uint32 = 0xFFFFFFFF

	// InvalidMessage is the exit code thrown when no receiver handled a message.
	InvalidMessage = 130

	methodIDMask = 0xffff
	methodIDFlag = 0x10000
)

var xmodem = crc16.MakeTable(crc16.CRC16_XMODEM)

// Hash is a 256-bit cell representation hash.
type Hash [32]byte

// Hex returns the 64-digit lowercase hex form.
func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

// Int returns the hash as an unsigned 256-bit integer.
func (h Hash) Int() *big.Int { return new(big.Int).SetBytes(h[:]) }

func (h Hash) String() string { return h.Hex() }

// CommentHash returns the pseudo-opcode of a text comment: the representation
// hash of a single cell holding a 32-bit zero followed by the UTF-8 bytes of
// text.
func CommentHash(text string) (Hash, error) {
	c, err := CommentCell(text)
	if err != nil {
		return Hash{}, err
	}
	return hashOf(c), nil
}

// CommentCell builds the body cell of a text comment message.
func CommentCell(text string) (*cell.Cell, error) {
	data := []byte(text)
	if len(data) > MaxCommentBytes {
		return nil, errors.CellOverflow(errors.PhaseHash, CommentPrefixBits+8*len(data), MaxCellBits)
	}
	b := cell.BeginCell()
	if err := b.StoreUInt(0, CommentPrefixBits); err != nil {
		return nil, errors.Wrap(errors.PhaseHash, errors.KindCellOverflow, err, "store comment tag")
	}
	if err := b.StoreSlice(data, uint(8*len(data))); err != nil {
		return nil, errors.Wrap(errors.PhaseHash, errors.KindCellOverflow, err, "store comment text")
	}
	return b.EndCell(), nil
}

// SliceHash returns the representation hash of c, matching what the
// generated router computes with slice_hash on the message body.
func SliceHash(c *cell.Cell) Hash {
	return hashOf(c)
}

func hashOf(c *cell.Cell) Hash {
	var h Hash
	copy(h[:], c.Hash())
	return h
}

// MethodID returns the get-method identifier of name:
// (crc16_xmodem(name) & 0xffff) | 0x10000.
func MethodID(name string) uint32 {
	return uint32(crc16.Checksum([]byte(name), xmodem))&methodIDMask | methodIDFlag
}

// FormatHeader renders a message header as a 0x-prefixed 32-bit hex literal.
func FormatHeader(h uint32) string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}
