package fileutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "ferium"

var ErrUnknownTokenService = errors.New("unknown token service")

// Tokens for these services are kept in the OS keyring rather than in the
// config document.
var tokenServices = []string{"github", "curseforge"}

func SetToken(service string, token string) error {
	user, err := tokenUser(service)
	if err != nil {
		return err
	}
	return keyring.Set(keyringService, user, token)
}

// GetToken returns the stored token for service, or "" if none is stored.
func GetToken(service string) (string, error) {
	user, err := tokenUser(service)
	if err != nil {
		return "", err
	}

	token, err := keyring.Get(keyringService, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func DeleteToken(service string) error {
	user, err := tokenUser(service)
	if err != nil {
		return err
	}

	err = keyring.Delete(keyringService, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

func tokenUser(service string) (string, error) {
	service = strings.ToLower(service)
	for _, s := range tokenServices {
		if s == service {
			return s + "_token", nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTokenService, service)
}
