package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newClientFixture() (*ClientService, *stubUserRepo, *stubClientRepo) {
	users := newStubUserRepo()
	clients := newStubClientRepo()
	return NewClientService(clients, users, zerolog.Nop()), users, clients
}

func commercialUser(id uint, username string) *domain.User {
	return &domain.User{ID: id, Username: username, Email: username + "@epicevents.fr", Department: domain.DepartmentCommercial}
}

func gestionUser(id uint, username string) *domain.User {
	return &domain.User{ID: id, Username: username, Email: username + "@epicevents.fr", Department: domain.DepartmentGestion}
}

func supportUser(id uint, username string) *domain.User {
	return &domain.User{ID: id, Username: username, Email: username + "@epicevents.fr", Department: domain.DepartmentSupport}
}

func TestClientCreateAutoAssignsCommercialActor(t *testing.T) {
	svc, users, _ := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))

	client, err := svc.Create(context.Background(), alice, ports.CreateClientInput{
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "jean.dupont@example.fr",
		Phone:       "+33611223344",
		CompanyName: "Dupont SARL",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if client.SalesContactID != alice.ID {
		t.Fatalf("SalesContactID = %d, want the acting commercial %d", client.SalesContactID, alice.ID)
	}
}

func TestClientCreateGestionMustNameSalesContact(t *testing.T) {
	svc, users, _ := newClientFixture()
	manager := users.add(gestionUser(2, "manager"))

	_, err := svc.Create(context.Background(), manager, ports.CreateClientInput{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.fr",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create() error = %v, want domain.ErrValidation", err)
	}
}

func TestClientCreateGestionWithExplicitSalesContact(t *testing.T) {
	svc, users, _ := newClientFixture()
	manager := users.add(gestionUser(2, "manager"))
	alice := users.add(commercialUser(7, "alice"))

	client, err := svc.Create(context.Background(), manager, ports.CreateClientInput{
		FirstName:      "Jean",
		LastName:       "Dupont",
		Email:          "jean.dupont@example.fr",
		SalesContactID: &alice.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if client.SalesContactID != alice.ID {
		t.Fatalf("SalesContactID = %d, want %d", client.SalesContactID, alice.ID)
	}
}

func TestClientCreateRejectsNonCommercialSalesContact(t *testing.T) {
	svc, users, _ := newClientFixture()
	manager := users.add(gestionUser(2, "manager"))
	bob := users.add(supportUser(3, "bob"))

	_, err := svc.Create(context.Background(), manager, ports.CreateClientInput{
		FirstName:      "Jean",
		LastName:       "Dupont",
		Email:          "jean.dupont@example.fr",
		SalesContactID: &bob.ID,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create() error = %v, want domain.ErrValidation", err)
	}
}

func TestClientCreateRejectsUnknownSalesContact(t *testing.T) {
	svc, users, _ := newClientFixture()
	manager := users.add(gestionUser(2, "manager"))
	missing := uint(99)

	_, err := svc.Create(context.Background(), manager, ports.CreateClientInput{
		FirstName:      "Jean",
		LastName:       "Dupont",
		Email:          "jean.dupont@example.fr",
		SalesContactID: &missing,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("Create() error = %v, want domain.ErrUserNotFound", err)
	}
}

func TestClientCreateRejectsDuplicateEmail(t *testing.T) {
	svc, users, clients := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))
	clients.add(&domain.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean.dupont@example.fr", SalesContactID: 7})

	_, err := svc.Create(context.Background(), alice, ports.CreateClientInput{
		FirstName: "Jeanne",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.fr",
	})
	if !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("Create() error = %v, want domain.ErrClientExists", err)
	}
}

func TestClientUpdateOwnershipForCommercial(t *testing.T) {
	svc, users, clients := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))
	users.add(commercialUser(9, "carol"))
	mine := clients.add(&domain.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.fr", SalesContactID: 7})
	other := clients.add(&domain.Client{FirstName: "Luc", LastName: "Bernard", Email: "luc@example.fr", SalesContactID: 9})

	phone := "+33699887766"
	if _, err := svc.Update(context.Background(), alice, mine.ID, ports.UpdateClientInput{Phone: &phone}); err != nil {
		t.Fatalf("Update() own client error = %v", err)
	}

	_, err := svc.Update(context.Background(), alice, other.ID, ports.UpdateClientInput{Phone: &phone})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Update() another commercial's client error = %v, want domain.ErrForbidden", err)
	}
	if !strings.Contains(err.Error(), "vos propres clients") {
		t.Fatalf("denial message = %q", err.Error())
	}
}

func TestClientUpdateGestionTouchesAnyClient(t *testing.T) {
	svc, users, clients := newClientFixture()
	manager := users.add(gestionUser(2, "manager"))
	users.add(commercialUser(9, "carol"))
	client := clients.add(&domain.Client{FirstName: "Luc", LastName: "Bernard", Email: "luc@example.fr", SalesContactID: 9})

	company := "Bernard & Fils"
	updated, err := svc.Update(context.Background(), manager, client.ID, ports.UpdateClientInput{CompanyName: &company})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CompanyName != company {
		t.Fatalf("CompanyName = %q, want %q", updated.CompanyName, company)
	}
}

func TestClientUpdateRejectsShortNames(t *testing.T) {
	svc, users, clients := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))
	client := clients.add(&domain.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.fr", SalesContactID: 7})

	short := "J"
	_, err := svc.Update(context.Background(), alice, client.ID, ports.UpdateClientInput{FirstName: &short})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Update() error = %v, want domain.ErrValidation", err)
	}
}

func TestClientUpdateUnknownClient(t *testing.T) {
	svc, users, _ := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))

	phone := "+33611223344"
	_, err := svc.Update(context.Background(), alice, 404, ports.UpdateClientInput{Phone: &phone})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("Update() error = %v, want domain.ErrClientNotFound", err)
	}
}

func TestClientListMine(t *testing.T) {
	svc, users, clients := newClientFixture()
	alice := users.add(commercialUser(7, "alice"))
	clients.add(&domain.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.fr", SalesContactID: 7})
	clients.add(&domain.Client{FirstName: "Luc", LastName: "Bernard", Email: "luc@example.fr", SalesContactID: 9})

	mine, err := svc.ListMine(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("ListMine() returned %d clients, want 1", len(mine))
	}
	if mine[0].Email != "jean@example.fr" {
		t.Fatalf("ListMine()[0].Email = %q", mine[0].Email)
	}
}
