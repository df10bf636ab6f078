package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// Flag inputs are validated declaratively before they reach the services.

var validate = validator.New()

type createUserSchema struct {
	Username   string `validate:"required,min=3,max=50"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8"`
	FirstName  string `validate:"required,min=2,max=50"`
	LastName   string `validate:"required,min=2,max=50"`
	Phone      string `validate:"required,min=6,max=20"`
	Department string `validate:"required,oneof=COMMERCIAL GESTION SUPPORT"`
}

type createClientSchema struct {
	FirstName   string `validate:"required,min=2,max=50"`
	LastName    string `validate:"required,min=2,max=50"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required,min=6,max=20"`
	CompanyName string `validate:"required,min=2,max=100"`
}

type createEventSchema struct {
	Name     string `validate:"required,min=3,max=100"`
	Location string `validate:"required,min=2,max=255"`
}

// validateInput runs the schema tags and folds failures into a single
// domain.ErrValidation with readable French field messages.
func validateInput(i any) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
	}
	return err
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("le champ %s est requis", field)
	case "email":
		return fmt.Sprintf("le champ %s doit être un email valide", field)
	case "min":
		return fmt.Sprintf("le champ %s doit avoir au moins %s caractères", field, fe.Param())
	case "max":
		return fmt.Sprintf("le champ %s ne peut pas dépasser %s caractères", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("le champ %s doit être parmi : %s", field, fe.Param())
	default:
		return fmt.Sprintf("le champ %s est invalide (%s)", field, fe.Tag())
	}
}

// eventTimeLayout is the wall-clock format accepted by event commands.
const eventTimeLayout = "2006-01-02 15:04"

func parseEventTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(eventTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: format de date invalide, utilisez le format %s", domain.ErrValidation, eventTimeLayout)
	}
	return t, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: montant %s invalide : %s", domain.ErrValidation, name, value)
	}
	return d, nil
}
