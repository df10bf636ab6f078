package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// Process exit codes. The boundary maps every classifiable failure onto one
// of these so scripts can branch on the outcome.
const (
	ExitOK               = 0
	ExitFatal            = 1
	ExitValidation       = 2
	ExitNotAuthenticated = 3
	ExitForbidden        = 4
	ExitNotFound         = 5
)

// ExitCode classifies err into a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrNotAuthenticated):
		return ExitNotAuthenticated
	case errors.Is(err, domain.ErrForbidden):
		return ExitForbidden
	case domain.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAlreadySigned),
		errors.Is(err, domain.ErrContractNotSigned),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrClientExists):
		return ExitValidation
	default:
		return ExitFatal
	}
}

// Render writes the operator-facing message for err. Expected kinds carry
// their own French message; anything else is surfaced as an unexpected
// error.
func Render(w io.Writer, err error) {
	if err == nil {
		return
	}

	printSeparator(w)
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		printError(w, "Vous devez être connecté pour effectuer cette action")
		printError(w, "Utilisez 'epicevents login' pour vous connecter")
	case ExitCode(err) == ExitFatal:
		printError(w, fmt.Sprintf("Erreur inattendue : %v", err))
	default:
		printError(w, capitalize(err.Error()))
	}
	printSeparator(w)
}
