// Package num implements arbitrary-precision decimal fixed-point arithmetic
// obeying POSIX bc numeric semantics: addition, subtraction, multiplication,
// truncating division, modulo, integer powers, modular exponentiation,
// integer square root, and base-10/base-B text conversion.
//
// A Num is a signed integer of unbounded magnitude (its unscaled value) paired
// with a non-negative decimal scale; the value it represents is
//
//	unscaled * 10**(-scale)
//
// Every operation truncates toward zero — there is no other rounding mode.
//
// Unlike math/big's receiver-is-result methods, operations here are plain
// functions that take the result slot as an explicit out-parameter; Divide,
// Divmod, Modulo, Raisemod and Sqrt report failure (division by zero, a
// negative exponent or radicand) and leave the destination untouched. The
// package also tracks ownership of each Num explicitly: NewNum, Retain and
// Release form a small reference-counted allocator with a free-list, so that
// negation can mutate in place when it is safe to do so.
package num
