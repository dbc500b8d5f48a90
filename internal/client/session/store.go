// Package session owns the client's authentication state: the durable
// Store holding the token, active flag, and cached profile, and the
// Service that is the only component allowed to transition that state.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fdatrack/fdatrack/internal/client/models"
	"github.com/fdatrack/fdatrack/internal/client/repositories/sessionkv"
	"github.com/fdatrack/fdatrack/internal/common"
	"github.com/fdatrack/fdatrack/internal/cryptox"
	"github.com/fdatrack/fdatrack/internal/dbx"
)

// Keys in the session table. The device secret and salt are seal material
// for the token-at-rest encryption; everything is torn down together.
const (
	keyToken        = "auth_token"
	keyTokenNonce   = "auth_token_nonce"
	keyActive       = "session_active"
	keyProfile      = "user_profile"
	keyDeviceSecret = "device_secret"
	keySealSalt     = "seal_salt"
)

// Store persists the session across process runs. Only the Service writes
// to it; everything else reads.
//
// The token is sealed at rest (AES-GCM under an argon2id-derived key from a
// per-database device secret). That is obfuscation on disk, not a trust
// boundary: ReadToken always hands back the raw bearer string.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// WriteToken seals and persists the raw token and marks the session active,
// in one transaction. No validation happens here; decoding the token first
// is the caller's job.
func (s *Store) WriteToken(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionkv.NewSQLiteRepository(tx)

		secret, salt, err := ensureSealMaterial(ctx, repo)
		if err != nil {
			return err
		}

		key := cryptox.DeriveSealKey(secret, salt)
		ciphertext, nonce, err := cryptox.Seal([]byte(token), key)
		if err != nil {
			return fmt.Errorf("sealing token: %w", err)
		}

		if err := repo.Set(ctx, keyToken, ciphertext); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyTokenNonce, nonce); err != nil {
			return err
		}
		return repo.Set(ctx, keyActive, []byte("1"))
	})
}

// ReadToken returns the raw persisted token, or ok=false when no complete
// token is stored. Partially missing seal material counts as absent; the
// Service's restore path cleans such remainders up.
func (s *Store) ReadToken(ctx context.Context) (string, bool, error) {
	repo := sessionkv.NewSQLiteRepository(s.db)

	ciphertext, err := repo.Get(ctx, keyToken)
	if err != nil {
		return "", false, err
	}
	nonce, err := repo.Get(ctx, keyTokenNonce)
	if err != nil {
		return "", false, err
	}
	secret, err := repo.Get(ctx, keyDeviceSecret)
	if err != nil {
		return "", false, err
	}
	salt, err := repo.Get(ctx, keySealSalt)
	if err != nil {
		return "", false, err
	}

	if ciphertext == nil || nonce == nil || secret == nil || salt == nil {
		return "", false, nil
	}

	plaintext, err := cryptox.Open(ciphertext, nonce, cryptox.DeriveSealKey(secret, salt))
	if err != nil {
		return "", false, fmt.Errorf("unsealing token: %w", err)
	}
	return string(plaintext), true, nil
}

func (s *Store) WriteProfile(ctx context.Context, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	repo := sessionkv.NewSQLiteRepository(s.db)
	return repo.Set(ctx, keyProfile, data)
}

func (s *Store) ReadProfile(ctx context.Context) (*models.Profile, bool, error) {
	repo := sessionkv.NewSQLiteRepository(s.db)
	data, err := repo.Get(ctx, keyProfile)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, false, fmt.Errorf("decoding cached profile: %w", err)
	}
	return &profile, true, nil
}

// Active reports the persisted session flag, a fast existence check that
// does not unseal the token.
func (s *Store) Active(ctx context.Context) (bool, error) {
	repo := sessionkv.NewSQLiteRepository(s.db)
	v, err := repo.Get(ctx, keyActive)
	if err != nil {
		return false, err
	}
	return string(v) == "1", nil
}

// ClearAll removes token, flag, profile, and seal material in one statement.
// Never leaves partial state; safe to call on an already-empty store.
func (s *Store) ClearAll(ctx context.Context) error {
	repo := sessionkv.NewSQLiteRepository(s.db)
	return repo.Clear(ctx)
}

// ensureSealMaterial loads the device secret and salt, creating both on
// first use within the caller's transaction.
func ensureSealMaterial(ctx context.Context, repo sessionkv.Repository) ([]byte, []byte, error) {
	secret, err := repo.Get(ctx, keyDeviceSecret)
	if err != nil {
		return nil, nil, err
	}
	salt, err := repo.Get(ctx, keySealSalt)
	if err != nil {
		return nil, nil, err
	}

	if secret == nil || salt == nil {
		secret = common.GenerateRandByteArray(32)
		salt = common.GenerateRandByteArray(16)
		if err := repo.Set(ctx, keyDeviceSecret, secret); err != nil {
			return nil, nil, err
		}
		if err := repo.Set(ctx, keySealSalt, salt); err != nil {
			return nil, nil, err
		}
	}

	return secret, salt, nil
}
