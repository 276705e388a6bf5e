package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm specifies which construction expands a seed into a byte stream
type HashAlgorithm int

const (
	// SHA256_HKDF uses HKDF-SHA256 (output capped at 255*32 bytes per seed)
	SHA256_HKDF HashAlgorithm = iota
	// BLAKE2B uses the BLAKE2b XOF keyed with the seed
	BLAKE2B
	// SHAKE256 uses the SHAKE256 XOF
	SHAKE256
)

func (h HashAlgorithm) String() string {
	switch h {
	case SHA256_HKDF:
		return "sha256-hkdf"
	case BLAKE2B:
		return "blake2b"
	case SHAKE256:
		return "shake256"
	default:
		return fmt.Sprintf("unknown(%d)", int(h))
	}
}

const deterministicSourceDomain = "KZG_DETERMINISTIC_SETUP_v1"

// DeterministicSource is a reproducible randomness source for Setup. The same
// seed and algorithm always yield the same public parameters, which makes it
// useful for tests and fixtures and useless for anything that needs the setup
// secret to stay unknown.
type DeterministicSource struct {
	algorithm HashAlgorithm
	reader    io.Reader
}

// NewDeterministicSource expands seed into a byte stream with the given algorithm
func NewDeterministicSource(seed []byte, algorithm HashAlgorithm) (*DeterministicSource, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed cannot be empty")
	}

	var reader io.Reader
	switch algorithm {
	case SHA256_HKDF:
		reader = hkdf.New(sha256.New, seed, []byte(deterministicSourceDomain), []byte("stream"))
	case BLAKE2B:
		key := seed
		if len(key) > blake2b.Size {
			// BLAKE2b keys are limited to 64 bytes
			sum := blake2b.Sum512(seed)
			key = sum[:]
		}
		xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
		if err != nil {
			return nil, fmt.Errorf("failed to create blake2b XOF: %w", err)
		}
		xof.Write([]byte(deterministicSourceDomain))
		reader = xof
	case SHAKE256:
		shake := sha3.NewShake256()
		shake.Write([]byte(deterministicSourceDomain))
		lengthBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(lengthBytes, uint32(len(seed)))
		shake.Write(lengthBytes)
		shake.Write(seed)
		reader = shake
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %d", algorithm)
	}

	return &DeterministicSource{algorithm: algorithm, reader: reader}, nil
}

// Read implements io.Reader
func (d *DeterministicSource) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

// Algorithm returns the expansion algorithm in use
func (d *DeterministicSource) Algorithm() HashAlgorithm {
	return d.algorithm
}
