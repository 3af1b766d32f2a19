package outbound

// CredentialVerifierPort checks a username/password pair. It returns
// domain.ErrAuthFailure for anything not on the allow-list.
type CredentialVerifierPort interface {
	Verify(username, password string) error
}
