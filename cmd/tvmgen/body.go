package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/opcode"
)

const textPrefix = "text:"

// parseBody turns a command-line message body into a cell. "text:<s>" is a
// text comment; anything else is hex, with an optional 0x prefix. An empty
// string is an empty body.
func parseBody(s string) (*cell.Cell, error) {
	if text, ok := strings.CutPrefix(s, textPrefix); ok {
		return opcode.CommentCell(text)
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("message body: %w", err)
	}
	b := cell.BeginCell()
	if err := b.StoreSlice(data, uint(len(data)*8)); err != nil {
		return nil, fmt.Errorf("message body: %w", err)
	}
	return b.EndCell(), nil
}
