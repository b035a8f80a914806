// Package swap demonstrates a two-party atomic swap driven by adaptor
// signatures.
//
// Alice holds the adaptor witness t and its public point T. She pre-signs her
// transaction under T and hands the pre-signature to Bob; Bob answers with a
// pre-signature of his own transaction under the same T. The moment Alice
// completes Bob's pre-signature by broadcasting the adapted signature, Bob
// can extract t from the broadcast and complete Alice's pre-signature in
// turn. Either both transactions end up signed or neither does.
//
// The package models only the cryptographic state machine of each party;
// transporting messages between them is up to the caller.
package swap
