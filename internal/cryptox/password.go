// Package cryptox contains the server-side cryptographic helpers: adaptive
// password hashing and the one-way digest stored for refresh tokens.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm selects how new password digests are produced. Verification
// accepts every supported format regardless of this setting.
type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

// ErrPasswordTooLong is returned by Hash for inputs bcrypt cannot digest.
var ErrPasswordTooLong = fmt.Errorf("%w: password is longer than 72 bytes", common.ErrorValidation)

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Memory     uint32 // KiB
	Time       uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultArgon2Params follow the RFC 9106 second recommended option.
var DefaultArgon2Params = Argon2Params{Memory: 64 * 1024, Time: 1, Threads: 4, SaltLength: 16, KeyLength: 32}

// PasswordHasher produces salted, self-describing password digests.
// It is immutable after construction and safe for concurrent use.
type PasswordHasher struct {
	algorithm  Algorithm
	bcryptCost int
	argon      Argon2Params
	dummy      string
}

// NewPasswordHasher validates the configuration and returns a hasher.
// A zero bcryptCost means bcrypt.DefaultCost.
func NewPasswordHasher(algorithm Algorithm, bcryptCost int) (*PasswordHasher, error) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	switch algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unsupported password hash algorithm %q", algorithm)
	}

	h := &PasswordHasher{algorithm: algorithm, bcryptCost: bcryptCost, argon: DefaultArgon2Params}

	dummy, err := h.Hash("gophnotes-timing-equalizer")
	if err != nil {
		return nil, err
	}
	h.dummy = dummy
	return h, nil
}

// Hash returns the digest of plain using the configured algorithm.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	if h.algorithm == AlgorithmArgon2id {
		return h.hashArgon2id(plain)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. Malformed digests yield false.
func (h *PasswordHasher) Verify(plain, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return verifyArgon2id(plain, digest)
	case strings.HasPrefix(digest, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
	default:
		return false
	}
}

// VerifyDummy burns the same CPU as a real Verify. Used when the account does
// not exist so that response time does not reveal it.
func (h *PasswordHasher) VerifyDummy(plain string) {
	_ = h.Verify(plain, h.dummy)
}

// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (h *PasswordHasher) hashArgon2id(plain string) (string, error) {
	salt := make([]byte, h.argon.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, h.argon.Time, h.argon.Memory, h.argon.Threads, h.argon.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.argon.Memory, h.argon.Time, h.argon.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2id(plain, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return false
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false
	}
	if p.Memory == 0 || p.Time == 0 || p.Threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(plain), salt, p.Time, p.Memory, p.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
