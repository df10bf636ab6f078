package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Se connecter au CRM",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				// Password omitted from the flags: read it from stdin so it
				// does not end up in the shell history.
				fmt.Fprint(cmd.OutOrStdout(), "Mot de passe : ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			_, user, err := app.Auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSeparator(out)
			printSuccess(out, fmt.Sprintf("Connexion réussie. Bienvenue, %s !", user.FullName()))
			printField(out, "Département", string(user.Department))
			printSeparator(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "nom d'utilisateur")
	cmd.Flags().StringVarP(&password, "password", "p", "", "mot de passe (demandé si absent)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Se déconnecter du CRM",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Déconnexion réussie")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Afficher l'utilisateur connecté",
		RunE: app.Guard.RequireAuth(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			out := cmd.OutOrStdout()
			printHeader(out, "Utilisateur connecté")
			printField(out, "ID", fmt.Sprintf("%d", actor.ID))
			printField(out, "Nom d'utilisateur", actor.Username)
			printField(out, "Nom", actor.FullName())
			printField(out, "Email", actor.Email)
			printField(out, "Département", string(actor.Department))
			printSeparator(out)
			return nil
		}),
	}
}
