package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newCreateClientCmd(app *App) *cobra.Command {
	var (
		firstName, lastName, email, phone, company string
		salesContactID                             uint
	)

	cmd := &cobra.Command{
		Use:   "create-client",
		Short: "Créer un nouveau client",
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "prénom du client")
	cmd.Flags().StringVar(&lastName, "last-name", "", "nom du client")
	cmd.Flags().StringVar(&email, "email", "", "email du client")
	cmd.Flags().StringVar(&phone, "phone", "", "téléphone du client")
	cmd.Flags().StringVar(&company, "company", "", "entreprise du client")
	cmd.Flags().UintVar(&salesContactID, "sales-contact-id", 0, "ID du commercial assigné (défaut : vous-même pour un COMMERCIAL)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("company")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		schema := createClientSchema{
			FirstName:   firstName,
			LastName:    lastName,
			Email:       email,
			Phone:       phone,
			CompanyName: company,
		}
		if err := validateInput(schema); err != nil {
			return err
		}

		input := ports.CreateClientInput{
			FirstName:   firstName,
			LastName:    lastName,
			Email:       email,
			Phone:       phone,
			CompanyName: company,
		}
		if cmd.Flags().Changed("sales-contact-id") {
			input.SalesContactID = &salesContactID
		}

		client, err := app.Clients.Create(cmd.Context(), actor, input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSeparator(out)
		printSuccess(out, fmt.Sprintf("Client '%s' créé avec succès !", client.FullName()))
		printField(out, "ID", fmt.Sprintf("%d", client.ID))
		printField(out, "Entreprise", client.CompanyName)
		printField(out, "Commercial assigné", fmt.Sprintf("%d", client.SalesContactID))
		printSeparator(out)
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion)

	return cmd
}

func newUpdateClientCmd(app *App) *cobra.Command {
	var (
		clientID                                   uint
		firstName, lastName, email, phone, company string
	)

	cmd := &cobra.Command{
		Use:   "update-client",
		Short: "Modifier un client existant",
	}

	cmd.Flags().UintVar(&clientID, "id", 0, "ID du client")
	cmd.Flags().StringVar(&firstName, "first-name", "", "nouveau prénom")
	cmd.Flags().StringVar(&lastName, "last-name", "", "nouveau nom")
	cmd.Flags().StringVar(&email, "email", "", "nouvel email")
	cmd.Flags().StringVar(&phone, "phone", "", "nouveau téléphone")
	cmd.Flags().StringVar(&company, "company", "", "nouvelle entreprise")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		var input ports.UpdateClientInput
		if cmd.Flags().Changed("first-name") {
			input.FirstName = &firstName
		}
		if cmd.Flags().Changed("last-name") {
			input.LastName = &lastName
		}
		if cmd.Flags().Changed("email") {
			input.Email = &email
		}
		if cmd.Flags().Changed("phone") {
			input.Phone = &phone
		}
		if cmd.Flags().Changed("company") {
			input.CompanyName = &company
		}

		client, err := app.Clients.Update(cmd.Context(), actor, clientID, input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSuccess(out, fmt.Sprintf("Client %d mis à jour : %s (%s)", client.ID, client.FullName(), client.CompanyName))
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion)

	return cmd
}

func newListClientsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-clients",
		Short: "Lister tous les clients",
		RunE: app.Guard.RequireAuth(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			clients, err := app.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			renderClients(cmd, "Liste des clients", clients)
			return nil
		}),
	}
}

func newFilterMyClientsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-my-clients",
		Short: "Lister vos clients",
		RunE: app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			clients, err := app.Clients.ListMine(cmd.Context(), actor)
			if err != nil {
				return err
			}
			renderClients(cmd, "Vos clients", clients)
			return nil
		}, domain.DepartmentCommercial),
	}
}

func renderClients(cmd *cobra.Command, title string, clients []*domain.Client) {
	out := cmd.OutOrStdout()
	printHeader(out, title)
	if len(clients) == 0 {
		fmt.Fprintln(out, "Aucun client trouvé")
		return
	}
	for _, c := range clients {
		fmt.Fprintf(out, "  #%-4d %-30s %-25s commercial: %d\n", c.ID, c.FullName(), c.CompanyName, c.SalesContactID)
	}
	printSeparator(out)
}
