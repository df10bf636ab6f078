package domain

import "errors"

// Expected failure kinds. Services wrap these with context using %w so the
// CLI boundary can classify them with errors.Is; anything not in this list
// is treated as fatal. The texts are the operator-facing French prefixes.
var (
	// ErrInvalidCredentials never distinguishes an unknown username from a
	// wrong password.
	ErrInvalidCredentials = errors.New("nom d'utilisateur ou mot de passe incorrect")
	ErrNotAuthenticated   = errors.New("authentification requise")
	ErrForbidden          = errors.New("action non autorisée")
	ErrInvalidToken       = errors.New("jeton de session invalide")

	ErrValidation        = errors.New("validation échouée")
	ErrAlreadySigned     = errors.New("contrat déjà signé")
	ErrContractNotSigned = errors.New("contrat non signé")

	ErrUserNotFound     = errors.New("utilisateur introuvable")
	ErrUserExists       = errors.New("utilisateur déjà existant")
	ErrClientNotFound   = errors.New("client introuvable")
	ErrClientExists     = errors.New("client déjà existant")
	ErrContractNotFound = errors.New("contrat introuvable")
	ErrEventNotFound    = errors.New("événement introuvable")
)

// IsNotFound reports whether err is any of the entity not-found kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrEventNotFound)
}
