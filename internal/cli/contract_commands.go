package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newCreateContractCmd(app *App) *cobra.Command {
	var (
		clientID                     uint
		totalAmount, remainingAmount string
		signed                       bool
	)

	cmd := &cobra.Command{
		Use:   "create-contract",
		Short: "Créer un nouveau contrat",
	}

	cmd.Flags().UintVar(&clientID, "client-id", 0, "ID du client")
	cmd.Flags().StringVar(&totalAmount, "total-amount", "", "montant total")
	cmd.Flags().StringVar(&remainingAmount, "remaining-amount", "", "montant restant à payer")
	cmd.Flags().BoolVar(&signed, "signed", false, "contrat déjà signé")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("total-amount")
	_ = cmd.MarkFlagRequired("remaining-amount")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		total, err := parseAmount("total", totalAmount)
		if err != nil {
			return err
		}
		remaining, err := parseAmount("restant", remainingAmount)
		if err != nil {
			return err
		}

		contract, err := app.Contracts.Create(cmd.Context(), actor, ports.CreateContractInput{
			ClientID:        clientID,
			TotalAmount:     total,
			RemainingAmount: remaining,
			IsSigned:        signed,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSeparator(out)
		printSuccess(out, fmt.Sprintf("Contrat #%d créé avec succès !", contract.ID))
		printField(out, "Client", fmt.Sprintf("%d", contract.ClientID))
		printField(out, "Montant total", contract.TotalAmount.String())
		printField(out, "Montant restant", contract.RemainingAmount.String())
		printField(out, "Signé", oui(contract.IsSigned))
		printSeparator(out)
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion)

	return cmd
}

func newUpdateContractCmd(app *App) *cobra.Command {
	var (
		contractID                   uint
		totalAmount, remainingAmount string
		signed                       bool
	)

	cmd := &cobra.Command{
		Use:   "update-contract",
		Short: "Modifier un contrat existant",
	}

	cmd.Flags().UintVar(&contractID, "id", 0, "ID du contrat")
	cmd.Flags().StringVar(&totalAmount, "total-amount", "", "nouveau montant total")
	cmd.Flags().StringVar(&remainingAmount, "remaining-amount", "", "nouveau montant restant")
	cmd.Flags().BoolVar(&signed, "signed", false, "statut de signature")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		var input ports.UpdateContractInput
		if cmd.Flags().Changed("total-amount") {
			total, err := parseAmount("total", totalAmount)
			if err != nil {
				return err
			}
			input.TotalAmount = &total
		}
		if cmd.Flags().Changed("remaining-amount") {
			remaining, err := parseAmount("restant", remainingAmount)
			if err != nil {
				return err
			}
			input.RemainingAmount = &remaining
		}
		if cmd.Flags().Changed("signed") {
			input.IsSigned = &signed
		}

		contract, err := app.Contracts.Update(cmd.Context(), actor, contractID, input)
		if err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Contrat #%d mis à jour (restant : %s, signé : %s)",
			contract.ID, contract.RemainingAmount.String(), oui(contract.IsSigned)))
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion)

	return cmd
}

func newSignContractCmd(app *App) *cobra.Command {
	var contractID uint

	cmd := &cobra.Command{
		Use:   "sign-contract",
		Short: "Signer un contrat",
	}

	cmd.Flags().UintVar(&contractID, "id", 0, "ID du contrat")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		contract, err := app.Contracts.Sign(cmd.Context(), actor, contractID)
		if err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Contrat #%d signé avec succès !", contract.ID))
		return nil
	}, domain.DepartmentCommercial)

	return cmd
}

func newUpdateContractPaymentCmd(app *App) *cobra.Command {
	var (
		contractID uint
		amount     string
	)

	cmd := &cobra.Command{
		Use:   "update-contract-payment",
		Short: "Enregistrer un paiement sur un contrat",
	}

	cmd.Flags().UintVar(&contractID, "id", 0, "ID du contrat")
	cmd.Flags().StringVar(&amount, "amount", "", "montant payé")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("amount")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		amountPaid, err := parseAmount("payé", amount)
		if err != nil {
			return err
		}

		contract, err := app.Contracts.RecordPayment(cmd.Context(), actor, contractID, amountPaid)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSuccess(out, fmt.Sprintf("Paiement de %s enregistré sur le contrat #%d", amountPaid.String(), contract.ID))
		printField(out, "Montant restant", contract.RemainingAmount.String())
		return nil
	}, domain.DepartmentCommercial)

	return cmd
}

func newListContractsCmd(app *App) *cobra.Command {
	return newContractListCmd(app, "list-contracts", "Lister tous les contrats", "Liste des contrats", ports.ContractFilter{})
}

func newFilterUnsignedContractsCmd(app *App) *cobra.Command {
	return newContractListCmd(app, "filter-unsigned-contracts", "Lister les contrats non signés", "Contrats non signés", ports.ContractFilter{OnlyUnsigned: true})
}

func newFilterUnpaidContractsCmd(app *App) *cobra.Command {
	return newContractListCmd(app, "filter-unpaid-contracts", "Lister les contrats non soldés", "Contrats non soldés", ports.ContractFilter{OnlyUnpaid: true})
}

func newFilterSignedContractsCmd(app *App) *cobra.Command {
	return newContractListCmd(app, "filter-signed-contracts", "Lister les contrats signés", "Contrats signés", ports.ContractFilter{OnlySigned: true})
}

func newContractListCmd(app *App, use, short, title string, filter ports.ContractFilter) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: app.Guard.RequireAuth(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			contracts, err := app.Contracts.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out, title)
			if len(contracts) == 0 {
				fmt.Fprintln(out, "Aucun contrat trouvé")
				return nil
			}
			for _, c := range contracts {
				fmt.Fprintf(out, "  #%-4d client: %-4d total: %-12s restant: %-12s signé: %s\n",
					c.ID, c.ClientID, c.TotalAmount.String(), c.RemainingAmount.String(), oui(c.IsSigned))
			}
			printSeparator(out)
			return nil
		}),
	}
}

func oui(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}
