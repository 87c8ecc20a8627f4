// Package fpu is a behavioral model of a single-precision floating
// point unit, intended as the bit-exact reference for an RTL
// implementation. Every kernel consumes the 32-bit images of its
// operands, performs fixed-width unsigned integer arithmetic on them
// the way a synthesizable datapath would, and emits a result image; no
// kernel leans on the host's float multiply or divide for its result
// mantissa. FDiv and FSqrt approximate the mantissa-domain reciprocal
// and square root by piecewise linear segments whose slope and
// intercept are derived in double precision and narrowed to single
// precision at package initialization.
//
// All kernels are pure and total. Inputs with biased exponent 0 or 255,
// negative inputs to FSqrt, and FCvtWS inputs that do not fit in a
// signed 32-bit integer produce unspecified bit patterns; everything
// else is covered by the accuracy contracts exercised by the sweep
// package.
package fpu
