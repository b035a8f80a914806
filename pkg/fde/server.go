package fde

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

// NonceSize is the AES-GCM nonce length in bytes.
const NonceSize = 12

// Server is the data provider. It holds two key pairs: the encryption key sk,
// whose 32-byte encoding doubles as the AES-256 key and whose public point
// serves as the adaptor tweak, and a separate signing key skS for the
// server's own signature.
type Server struct {
	scheme adaptorsig.Scheme
	sk     adaptorsig.Scalar
	skS    adaptorsig.Scalar

	// PK is the public point of the encryption key; clients use it as the
	// tweak point for their pre-signatures.
	PK adaptorsig.Point
	// SigPK is the public key the server's own signatures verify under.
	SigPK adaptorsig.Point
}

// NewServer creates a Server with fresh encryption and signing keys under the
// given scheme.
func NewServer(scheme adaptorsig.Scheme) (*Server, error) {
	sk, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate encryption key: %w", err)
	}
	skS, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &Server{
		scheme: scheme,
		sk:     sk,
		skS:    skS,
		PK:     adaptorsig.ScalarBaseMult(&sk),
		SigPK:  adaptorsig.ScalarBaseMult(&skS),
	}, nil
}

// EncryptData seals plaintext under AES-256-GCM keyed with the raw encoding
// of the server's encryption scalar and a fresh 96-bit nonce.
func (s *Server) EncryptData(plaintext string) (ct []byte, nonce [NonceSize]byte, err error) {
	key := s.sk.Bytes()
	defer adaptorsig.ZeroizeBytes(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, nonce, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nonce, fmt.Errorf("init gcm: %w", err)
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, nonce, fmt.Errorf("draw nonce: %w", err)
	}
	ct = aead.Seal(nil, nonce[:], []byte(plaintext), nil)
	return ct, nonce, nil
}

// VerifyPresig checks the client's pre-signature over the hex-encoded
// ciphertext, with the server's encryption point as the tweak.
func (s *Server) VerifyPresig(pre *adaptorsig.PreSignature, clientPK *adaptorsig.Point, ct []byte) bool {
	return s.scheme.VerifyPreSign(clientPK, hex.EncodeToString(ct), &s.PK, pre)
}

// GenerateSigAndAdapt signs the hex-encoded ciphertext with the server's
// signing key and completes the client's pre-signature with the encryption
// scalar. Broadcasting the adapted signature reveals sk to the client.
func (s *Server) GenerateSigAndAdapt(ct []byte, clientPre *adaptorsig.PreSignature) (sigS, sigC adaptorsig.Signature, err error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return adaptorsig.Signature{}, adaptorsig.Signature{}, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	msg := hex.EncodeToString(ct)
	sigS = s.scheme.Sign(&s.skS, msg, &nonce)
	sigC = s.scheme.AdaptSignature(clientPre, &s.sk)
	return sigS, sigC, nil
}

// Close wipes the server's secret material. The server must not be used
// afterwards.
func (s *Server) Close() {
	adaptorsig.ZeroizeScalar(&s.sk)
	adaptorsig.ZeroizeScalar(&s.skS)
}
