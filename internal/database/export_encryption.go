package database

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akyairhashvil/storyboard/internal/util"
)

type encryptedExport struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func encryptData(payload []byte, passphrase string) ([]byte, error) {
	salt, nonce, ciphertext, err := util.Seal(payload, passphrase)
	if err != nil {
		return nil, fmt.Errorf("encrypt project file: %w", err)
	}
	wrapped := encryptedExport{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

func isEncryptedExport(data []byte) bool {
	var header struct {
		Encrypted bool `json:"encrypted"`
	}
	return json.Unmarshal(data, &header) == nil && header.Encrypted
}

func decryptData(data []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedExport
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode encrypted project file: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	plain, err := util.Open(salt, nonce, ciphertext, passphrase)
	if errors.Is(err, util.ErrDecrypt) {
		return nil, ErrWrongPassphrase
	}
	return plain, err
}
