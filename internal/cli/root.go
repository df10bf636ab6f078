// Package cli wires the cobra command tree: every command declares its
// authorization requirements through the guard and receives the acting user
// as an explicit parameter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/ports"
	"github.com/epicevents/crm-system/internal/core/service"
)

// App bundles the services the commands depend on, built once per
// invocation in main.
type App struct {
	Guard     *Guard
	Auth      *service.AuthService
	Users     ports.UserService
	Clients   ports.ClientService
	Contracts ports.ContractService
	Events    ports.EventService
}

// NewRootCmd builds the epicevents command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "epicevents",
		Short: "CRM en ligne de commande d'Epic Events",
		Long: "Epic Events CRM : gestion des clients, contrats et événements avec " +
			"authentification par session et permissions par département.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),

		newCreateClientCmd(app),
		newUpdateClientCmd(app),
		newListClientsCmd(app),
		newFilterMyClientsCmd(app),

		newCreateContractCmd(app),
		newUpdateContractCmd(app),
		newSignContractCmd(app),
		newUpdateContractPaymentCmd(app),
		newListContractsCmd(app),
		newFilterUnsignedContractsCmd(app),
		newFilterUnpaidContractsCmd(app),
		newFilterSignedContractsCmd(app),

		newCreateEventCmd(app),
		newUpdateEventCmd(app),
		newAssignSupportCmd(app),
		newListEventsCmd(app),
		newFilterUnassignedEventsCmd(app),
		newFilterMyEventsCmd(app),

		newCreateUserCmd(app),
		newUpdateUserCmd(app),
		newDeleteUserCmd(app),
		newListUsersCmd(app),
	)

	return root
}
