// Package classify implements the token classifier behind the /bfhl endpoint.
//
// A single pass over the input array sorts every string token into one of
// four categories: odd numbers, even numbers, alphabetic words and special
// characters. Numeric tokens are summed with arbitrary precision, and every
// letter seen is collected into an alphabetic pool that is finally reversed
// and re-cased with alternating upper/lower case to form the concatenation
// string.
//
// Two policies are configurable through Params:
//   - SpecialPolicy: decompose mixed tokens per character, or report them whole
//   - PoolCase: upper-case letters as they enter the pool, or keep their case
//
// The classifier holds no state between calls and is safe for concurrent use.
package classify
