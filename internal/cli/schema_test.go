package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

func validUserSchema() createUserSchema {
	return createUserSchema{
		Username:   "bob",
		Email:      "bob@epicevents.fr",
		Password:   "S3cret!pass",
		FirstName:  "Bob",
		LastName:   "Durand",
		Phone:      "+33611223344",
		Department: "SUPPORT",
	}
}

func TestValidateInputAccepts(t *testing.T) {
	if err := validateInput(validUserSchema()); err != nil {
		t.Fatalf("validateInput() error = %v", err)
	}
}

func TestValidateInputRejectsBadEmail(t *testing.T) {
	input := validUserSchema()
	input.Email = "not-an-email"

	err := validateInput(input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want domain.ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "email valide") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestValidateInputRejectsUnknownDepartment(t *testing.T) {
	input := validUserSchema()
	input.Department = "MARKETING"

	err := validateInput(input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want domain.ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "COMMERCIAL GESTION SUPPORT") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestValidateInputCollectsAllFailures(t *testing.T) {
	input := createClientSchema{
		FirstName: "J",
		LastName:  "",
		Email:     "bad",
		Phone:     "12",
	}

	err := validateInput(input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want domain.ErrValidation", err)
	}
	msg := err.Error()
	for _, want := range []string{"firstname", "lastname", "email", "phone", "companyname"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q lacks field %q", msg, want)
		}
	}
}

func TestParseEventTime(t *testing.T) {
	got, err := parseEventTime("2025-06-04 15:00")
	if err != nil {
		t.Fatalf("parseEventTime() error = %v", err)
	}
	want := time.Date(2025, 6, 4, 15, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseEventTime() = %v, want %v", got, want)
	}

	if _, err := parseEventTime("04/06/2025 15h"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("parseEventTime() error = %v, want domain.ErrValidation", err)
	}
}

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("total", "10000.50")
	if err != nil {
		t.Fatalf("parseAmount() error = %v", err)
	}
	if got.String() != "10000.5" {
		t.Fatalf("parseAmount() = %s", got)
	}

	if _, err := parseAmount("total", "dix mille"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("parseAmount() error = %v, want domain.ErrValidation", err)
	}
}
