package security

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/storefront/internal/domain/repository"
)

// DefaultAdminPassword admin paroli (maxfiy emas, faqat to'siq)
const DefaultAdminPassword = "0805"

type staticVerifier struct {
	secret string
}

// NewStaticVerifier qat'iy parol bilan solishtiruvchi verifier
func NewStaticVerifier(secret string) repository.CredentialVerifier {
	return &staticVerifier{secret: secret}
}

// Verify parolni tekshirish
func (v *staticVerifier) Verify(ctx context.Context, candidate string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(v.secret)) == 1, nil
}

type bcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier bcrypt hash asosidagi verifier
func NewBcryptVerifier(hash string) (repository.CredentialVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}
	return &bcryptVerifier{hash: []byte(hash)}, nil
}

// Verify parolni hash bilan tekshirish
func (v *bcryptVerifier) Verify(ctx context.Context, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
