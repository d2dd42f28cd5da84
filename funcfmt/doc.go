// Package funcfmt renders a funcast.Module as FunC source text.
//
// Formatting is fixed: four-space indentation, a blank line between
// top-level entries, operator operands parenthesized when they are
// themselves operator expressions, and function specifiers in the order
// impure, inline or inline_ref, method_id.
package funcfmt
