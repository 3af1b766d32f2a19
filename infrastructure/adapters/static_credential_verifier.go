package adapters

import (
	"crypto/subtle"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type staticCredentialVerifier struct {
	username []byte
	password []byte
}

// NewStaticCredentialVerifier checks against the single configured
// username/password pair. Swapping in a real identity provider only
// requires another CredentialVerifierPort implementation.
func NewStaticCredentialVerifier(authConfig *config.AuthConfig) outbound.CredentialVerifierPort {
	return &staticCredentialVerifier{
		username: []byte(authConfig.Username),
		password: []byte(authConfig.Password),
	}
}

func (v *staticCredentialVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), v.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), v.password)
	if userOK&passOK != 1 {
		return domain.ErrAuthFailure
	}
	return nil
}
