// Package generator derives per-service passwords from a master phrase.
//
// Nothing produced here is ever stored: the same phrase, service, version and
// length always reproduce the same password, which is how a lost password is
// recovered. The derivation format (seed layout, engine constants, character
// sets and the draw order in [Generate]) is therefore frozen; changing any of
// it changes every password a user has ever derived.
//
// The engine step is exact uint32 arithmetic. Implementations that compute
// state*1103515245 in float64 lose low-order bits once the product passes
// 2^53, which happens for most seeds, so passwords they derived do not
// reproduce here.
package generator
