package media

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// CredentialTTL is how long a minted upload credential stays valid.
const CredentialTTL = 300 * time.Second

// Credential is the time-boxed token/signature triple that lets a
// client-side uploader talk to the media service directly.
type Credential struct {
	Signature string `json:"signature"`
	Expire    int64  `json:"expire"`
	Token     string `json:"token"`
	PublicKey string `json:"publicKey"`
}

// Sign computes the hex HMAC-SHA1 of token+expire keyed by the private
// key. This matches what the media service verifies on upload.
func Sign(privateKey, token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// MintCredential issues a fresh single-use upload credential: a random
// 32-hex-char token, an expiry CredentialTTL from now, and the signature
// over both.
func MintCredential(privateKey, publicKey string) (*Credential, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return nil, fmt.Errorf("generating upload token: %w", err)
	}
	token := hex.EncodeToString(raw[:])

	expire := time.Now().Add(CredentialTTL).Unix()

	return &Credential{
		Signature: Sign(privateKey, token, expire),
		Expire:    expire,
		Token:     token,
		PublicKey: publicKey,
	}, nil
}
