package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionData holds the payload stored per login session.
type SessionData struct {
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionStore keeps encrypted login sessions in Redis. The AES key is loaded
// from configuration so sessions survive a process restart.
type SessionStore struct {
	client *redis.Client
	key    []byte
}

// NewSessionStore creates a session store from a 64-char hex AES-256 key.
func NewSessionStore(client *redis.Client, encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &SessionStore{client: client, key: key}, nil
}

// CreateSession stores encrypted session data under the given session id.
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, "session:"+sessionID, encrypted, expiration).Err()
}

// GetSession retrieves and decrypts session data.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	encrypted, err := s.client.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		return nil, err
	}

	plaintext, err := s.decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteSession removes a session.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, "session:"+sessionID).Err()
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(sealed), nil
}

func (s *SessionStore) decrypt(encryptedHex string) ([]byte, error) {
	sealed, err := hex.DecodeString(encryptedHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
