package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Business rule validators shared by the contract and event services. This is
// the single authoritative rule set; services never re-implement these checks.
// Messages are the operator-facing French strings surfaced by the CLI.

// ValidateContractAmounts checks 0 <= remaining <= total.
func ValidateContractAmounts(total, remaining decimal.Decimal) error {
	if total.IsNegative() {
		return fmt.Errorf("%w: le montant total doit être positif ou zéro", ErrValidation)
	}
	if remaining.IsNegative() {
		return fmt.Errorf("%w: le montant restant doit être positif ou zéro", ErrValidation)
	}
	if remaining.GreaterThan(total) {
		return fmt.Errorf("%w: le montant restant (%s) ne peut pas dépasser le montant total (%s)",
			ErrValidation, remaining.String(), total.String())
	}
	return nil
}

// ValidatePayment checks 0 < amountPaid <= remaining.
func ValidatePayment(amountPaid, remaining decimal.Decimal) error {
	if !amountPaid.IsPositive() {
		return fmt.Errorf("%w: le montant du paiement doit être positif", ErrValidation)
	}
	if amountPaid.GreaterThan(remaining) {
		return fmt.Errorf("%w: le montant du paiement (%s) dépasse le montant restant (%s)",
			ErrValidation, amountPaid.String(), remaining.String())
	}
	return nil
}

// ValidateEventSchedule checks the date ordering, the future-start rule and
// the attendee count for a new event. now is injected so the rule stays
// testable.
func ValidateEventSchedule(start, end time.Time, attendees int, now time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: l'heure de fin de l'événement doit être postérieure à l'heure de début", ErrValidation)
	}
	if attendees < 0 {
		return fmt.Errorf("%w: le nombre de participants doit être positif", ErrValidation)
	}
	if start.Before(now) {
		return fmt.Errorf("%w: l'heure de début de l'événement doit être dans le futur", ErrValidation)
	}
	return nil
}

// ValidateAttendees checks the attendee count alone, for partial updates.
func ValidateAttendees(attendees int) error {
	if attendees < 0 {
		return fmt.Errorf("%w: le nombre de participants doit être positif", ErrValidation)
	}
	return nil
}

// ValidateSupportUser checks that a user can be assigned as an event's
// support contact.
func ValidateSupportUser(u *User) error {
	if u.Department != DepartmentSupport {
		return fmt.Errorf("%w: l'utilisateur %d n'est pas du département SUPPORT", ErrValidation, u.ID)
	}
	return nil
}

// ValidateSalesUser checks that a user can be assigned as a client's sales
// contact.
func ValidateSalesUser(u *User) error {
	if u.Department != DepartmentCommercial {
		return fmt.Errorf("%w: l'utilisateur %d n'est pas du département COMMERCIAL", ErrValidation, u.ID)
	}
	return nil
}
