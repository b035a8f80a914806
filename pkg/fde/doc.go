// Package fde demonstrates a fair data exchange driven by adaptor
// signatures.
//
// The server encrypts its data under AES-256-GCM with a key that is the raw
// 32-byte encoding of a secret curve scalar sk, and publishes the ciphertext
// together with pk = sk*G. The client pre-signs the ciphertext with pk as the
// tweak point: the only way the server can turn that pre-signature into a
// valid client signature (its payment) is by plugging in sk, and the moment
// it broadcasts the completed signature the client extracts sk and decrypts.
// The server is paid iff the client can decrypt.
//
// Identifying the AEAD key with a scalar encoding is sound only because the
// server's sk is freshly uniform; the package never reuses an extracted
// witness as an encryption key.
package fde
