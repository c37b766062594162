// Package sscc implements GS1 SSCC-18 serial shipping container codes: the
// mod-10 check digit algorithm, the 18-digit Code value object, and a
// stateful sequential Generator.
//
// The code structure is:
//   - extension digit (1 digit)
//   - GS1 company prefix (7-10 digits)
//   - serial reference (zero-padded to the configured width)
//   - check digit (1 digit, always computed, never supplied)
//
// for a total of exactly 18 digits. Every code a Generator emits validates
// under ValidateCode.
package sscc
