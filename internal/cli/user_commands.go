package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newCreateUserCmd(app *App) *cobra.Command {
	var (
		username, email, password          string
		firstName, lastName, phone, depart string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Créer un nouvel utilisateur",
	}

	cmd.Flags().StringVar(&username, "username", "", "nom d'utilisateur")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "mot de passe")
	cmd.Flags().StringVar(&firstName, "first-name", "", "prénom")
	cmd.Flags().StringVar(&lastName, "last-name", "", "nom")
	cmd.Flags().StringVar(&phone, "phone", "", "téléphone")
	cmd.Flags().StringVar(&depart, "department", "", "département (COMMERCIAL, GESTION ou SUPPORT)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("department")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		schema := createUserSchema{
			Username:   username,
			Email:      email,
			Password:   password,
			FirstName:  firstName,
			LastName:   lastName,
			Phone:      phone,
			Department: depart,
		}
		if err := validateInput(schema); err != nil {
			return err
		}

		user, err := app.Users.Create(cmd.Context(), ports.CreateUserInput{
			Username:   username,
			Email:      email,
			Password:   password,
			FirstName:  firstName,
			LastName:   lastName,
			Phone:      phone,
			Department: domain.Department(depart),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSeparator(out)
		printSuccess(out, fmt.Sprintf("Utilisateur '%s' créé avec succès !", user.Username))
		printField(out, "ID", fmt.Sprintf("%d", user.ID))
		printField(out, "Nom", user.FullName())
		printField(out, "Département", string(user.Department))
		printSeparator(out)
		return nil
	}, domain.DepartmentGestion)

	return cmd
}

func newUpdateUserCmd(app *App) *cobra.Command {
	var (
		userID                                    uint
		email, password, firstName, lastName, tel string
	)

	cmd := &cobra.Command{
		Use:   "update-user",
		Short: "Modifier un utilisateur existant",
	}

	cmd.Flags().UintVar(&userID, "id", 0, "ID de l'utilisateur")
	cmd.Flags().StringVar(&email, "email", "", "nouvel email")
	cmd.Flags().StringVar(&password, "password", "", "nouveau mot de passe")
	cmd.Flags().StringVar(&firstName, "first-name", "", "nouveau prénom")
	cmd.Flags().StringVar(&lastName, "last-name", "", "nouveau nom")
	cmd.Flags().StringVar(&tel, "phone", "", "nouveau téléphone")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		var input ports.UpdateUserInput
		if cmd.Flags().Changed("email") {
			input.Email = &email
		}
		if cmd.Flags().Changed("password") {
			input.Password = &password
		}
		if cmd.Flags().Changed("first-name") {
			input.FirstName = &firstName
		}
		if cmd.Flags().Changed("last-name") {
			input.LastName = &lastName
		}
		if cmd.Flags().Changed("phone") {
			input.Phone = &tel
		}

		user, err := app.Users.Update(cmd.Context(), userID, input)
		if err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Utilisateur %d mis à jour : %s", user.ID, user.Username))
		return nil
	}, domain.DepartmentGestion)

	return cmd
}

func newDeleteUserCmd(app *App) *cobra.Command {
	var userID uint

	cmd := &cobra.Command{
		Use:   "delete-user",
		Short: "Supprimer un utilisateur",
	}

	cmd.Flags().UintVar(&userID, "id", 0, "ID de l'utilisateur")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		if err := app.Users.Delete(cmd.Context(), userID); err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Utilisateur %d supprimé", userID))
		return nil
	}, domain.DepartmentGestion)

	return cmd
}

func newListUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "Lister tous les utilisateurs",
		RunE: app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out, "Liste des utilisateurs")
			if len(users) == 0 {
				fmt.Fprintln(out, "Aucun utilisateur trouvé")
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(out, "  #%-4d %-20s %-30s %s\n", u.ID, u.Username, u.FullName(), u.Department)
			}
			printSeparator(out)
			return nil
		}, domain.DepartmentGestion),
	}
}
