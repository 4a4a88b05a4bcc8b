package profile

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

const (
	// secretBytes is the entropy of a generated profile secret
	secretBytes = 24
	// MinSecretLength is the shortest secret a caller may choose
	MinSecretLength = 16
)

// LinkInput is a (handle, address) binding already verified by the linking flow
type LinkInput struct {
	Handle  string
	Address string
	// Secret is used for a new profile; one is generated when empty
	Secret   string
	Metadata json.RawMessage
}

// LinkResult is the outcome of a link
type LinkResult struct {
	Profile        *schema.Profile
	Wallet         *schema.Wallet
	ProfileCreated bool
	AlreadyLinked  bool
	// Secret is set only when the profile was created with a generated secret
	Secret string
}

// Service manages profiles and their wallet bindings
//
//go:generate mockgen -source=profile.go -destination=../mocks/profile.go -package=mocks -mock_names=Service=MockProfileService
type Service interface {
	// Link binds a verified address to a handle, creating the profile on its first link
	Link(ctx context.Context, input LinkInput) (*LinkResult, error)

	// Unlink removes an address from a profile after checking the profile secret
	Unlink(ctx context.Context, handle string, address string, secret string) error

	// RotateSecret replaces the profile secret and returns the new plaintext once
	RotateSecret(ctx context.Context, handle string) (string, error)
}

type service struct {
	store      store.Store
	bcryptCost int
}

// NewService creates a profile service. A non-positive cost uses bcrypt.DefaultCost.
func NewService(st store.Store, bcryptCost int) Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{store: st, bcryptCost: bcryptCost}
}

// Link binds a verified address to a handle
func (s *service) Link(ctx context.Context, input LinkInput) (*LinkResult, error) {
	handle := domain.NormalizeHandle(input.Handle)
	if !domain.ValidHandle(handle) {
		return nil, fmt.Errorf("%w: handle %q", domain.ErrInvalidInput, input.Handle)
	}
	if !domain.ValidAddress(input.Address) {
		return nil, fmt.Errorf("%w: address %q", domain.ErrInvalidInput, input.Address)
	}

	secret := input.Secret
	generated := false
	if secret == "" {
		var err error
		secret, err = generateSecret()
		if err != nil {
			return nil, err
		}
		generated = true
	} else if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: secret must be at least %d characters", domain.ErrInvalidInput, MinSecretLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	linked, err := s.store.LinkWallet(ctx, store.LinkWalletInput{
		Handle:     handle,
		Address:    domain.NormalizeAddress(input.Address),
		SecretHash: string(hash),
		Metadata:   input.Metadata,
	})
	if err != nil {
		return nil, err
	}

	result := &LinkResult{
		Profile:        linked.Profile,
		Wallet:         linked.Wallet,
		ProfileCreated: linked.ProfileCreated,
		AlreadyLinked:  linked.AlreadyLinked,
	}
	if linked.ProfileCreated && generated {
		result.Secret = secret
	}

	logger.InfoCtx(ctx, "Wallet linked",
		zap.String("handle", handle),
		zap.String("address", linked.Wallet.Address),
		zap.Bool("profile_created", linked.ProfileCreated),
		zap.Bool("already_linked", linked.AlreadyLinked))

	return result, nil
}

// Unlink removes an address after checking the profile secret
func (s *service) Unlink(ctx context.Context, handle string, address string, secret string) error {
	profile, err := s.authenticate(ctx, handle, secret)
	if err != nil {
		return err
	}

	if err := s.store.UnlinkWallet(ctx, profile.ID, address); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Wallet unlinked",
		zap.String("handle", profile.Handle),
		zap.String("address", domain.NormalizeAddress(address)))

	return nil
}

// RotateSecret replaces the profile secret
func (s *service) RotateSecret(ctx context.Context, handle string) (string, error) {
	profile, err := s.getProfile(ctx, handle)
	if err != nil {
		return "", err
	}

	secret, err := generateSecret()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	if err := s.store.UpdateProfileSecret(ctx, profile.ID, string(hash)); err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Profile secret rotated", zap.String("handle", profile.Handle))

	return secret, nil
}

func (s *service) getProfile(ctx context.Context, handle string) (*schema.Profile, error) {
	profile, err := s.store.GetProfileByHandle(ctx, domain.NormalizeHandle(handle))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", handle, domain.ErrNotFound)
	}
	return profile, nil
}

// authenticate loads the profile and checks the secret against its hash
func (s *service) authenticate(ctx context.Context, handle string, secret string) (*schema.Profile, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: missing profile secret", domain.ErrUnauthorized)
	}

	profile, err := s.getProfile(ctx, handle)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.SecretHash), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, fmt.Errorf("%w: profile secret does not match", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify secret: %w", err)
	}

	return profile, nil
}

func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
