package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newCreateEventCmd(app *App) *cobra.Command {
	var (
		name, start, end, location, notes string
		contractID, supportContactID      uint
		attendees                         int
	)

	cmd := &cobra.Command{
		Use:   "create-event",
		Short: "Créer un nouvel événement",
	}

	cmd.Flags().StringVar(&name, "name", "", "nom de l'événement")
	cmd.Flags().UintVar(&contractID, "contract-id", 0, "ID du contrat associé")
	cmd.Flags().StringVar(&start, "start", "", "date et heure de début (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "date et heure de fin (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "lieu")
	cmd.Flags().IntVar(&attendees, "attendees", 0, "nombre de participants")
	cmd.Flags().StringVar(&notes, "notes", "", "notes (optionnel)")
	cmd.Flags().UintVar(&supportContactID, "support-contact-id", 0, "ID du contact support (optionnel)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("contract-id")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("attendees")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		if err := validateInput(createEventSchema{Name: name, Location: location}); err != nil {
			return err
		}

		startAt, err := parseEventTime(start)
		if err != nil {
			return err
		}
		endAt, err := parseEventTime(end)
		if err != nil {
			return err
		}

		input := ports.CreateEventInput{
			Name:       name,
			ContractID: contractID,
			EventStart: startAt,
			EventEnd:   endAt,
			Location:   location,
			Attendees:  attendees,
			Notes:      notes,
		}
		if cmd.Flags().Changed("support-contact-id") {
			input.SupportContactID = &supportContactID
		}

		event, err := app.Events.Create(cmd.Context(), actor, input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSeparator(out)
		printSuccess(out, fmt.Sprintf("Événement '%s' créé avec succès !", event.Name))
		printField(out, "ID", fmt.Sprintf("%d", event.ID))
		printField(out, "Contrat", fmt.Sprintf("%d", event.ContractID))
		printField(out, "Début", formatEventTime(event.EventStart))
		printField(out, "Fin", formatEventTime(event.EventEnd))
		printField(out, "Lieu", event.Location)
		printField(out, "Participants", fmt.Sprintf("%d", event.Attendees))
		if event.SupportContactID != nil {
			printField(out, "Contact support", fmt.Sprintf("%d", *event.SupportContactID))
		} else {
			printField(out, "Contact support", "non assigné")
		}
		printSeparator(out)
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion)

	return cmd
}

func newUpdateEventCmd(app *App) *cobra.Command {
	var (
		eventID                           uint
		name, start, end, location, notes string
		attendees                         int
	)

	cmd := &cobra.Command{
		Use:   "update-event",
		Short: "Modifier un événement existant",
	}

	cmd.Flags().UintVar(&eventID, "id", 0, "ID de l'événement")
	cmd.Flags().StringVar(&name, "name", "", "nouveau nom")
	cmd.Flags().StringVar(&start, "start", "", "nouvelle date de début (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "nouvelle date de fin (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "nouveau lieu")
	cmd.Flags().IntVar(&attendees, "attendees", 0, "nouveau nombre de participants")
	cmd.Flags().StringVar(&notes, "notes", "", "nouvelles notes")
	_ = cmd.MarkFlagRequired("id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		var input ports.UpdateEventInput
		if cmd.Flags().Changed("name") {
			input.Name = &name
		}
		if cmd.Flags().Changed("start") {
			startAt, err := parseEventTime(start)
			if err != nil {
				return err
			}
			input.EventStart = &startAt
		}
		if cmd.Flags().Changed("end") {
			endAt, err := parseEventTime(end)
			if err != nil {
				return err
			}
			input.EventEnd = &endAt
		}
		if cmd.Flags().Changed("location") {
			input.Location = &location
		}
		if cmd.Flags().Changed("attendees") {
			input.Attendees = &attendees
		}
		if cmd.Flags().Changed("notes") {
			input.Notes = &notes
		}

		event, err := app.Events.Update(cmd.Context(), actor, eventID, input)
		if err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Événement #%d mis à jour : %s", event.ID, event.Name))
		return nil
	}, domain.DepartmentGestion, domain.DepartmentSupport)

	return cmd
}

func newAssignSupportCmd(app *App) *cobra.Command {
	var eventID, supportContactID uint

	cmd := &cobra.Command{
		Use:   "assign-support",
		Short: "Assigner un contact support à un événement",
	}

	cmd.Flags().UintVar(&eventID, "event-id", 0, "ID de l'événement")
	cmd.Flags().UintVar(&supportContactID, "support-contact-id", 0, "ID de l'utilisateur SUPPORT")
	_ = cmd.MarkFlagRequired("event-id")
	_ = cmd.MarkFlagRequired("support-contact-id")

	cmd.RunE = app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
		event, err := app.Events.AssignSupport(cmd.Context(), actor, eventID, supportContactID)
		if err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Contact support %d assigné à l'événement #%d", supportContactID, event.ID))
		return nil
	}, domain.DepartmentGestion)

	return cmd
}

func newListEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-events",
		Short: "Lister tous les événements",
		RunE: app.Guard.RequireAuth(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			events, err := app.Events.List(cmd.Context(), ports.EventFilter{})
			if err != nil {
				return err
			}
			renderEvents(cmd, "Liste des événements", events)
			return nil
		}),
	}
}

func newFilterUnassignedEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-unassigned-events",
		Short: "Lister les événements sans contact support",
		RunE: app.Guard.RequireAuth(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			events, err := app.Events.List(cmd.Context(), ports.EventFilter{OnlyUnassigned: true})
			if err != nil {
				return err
			}
			renderEvents(cmd, "Événements sans contact support", events)
			return nil
		}),
	}
}

func newFilterMyEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-my-events",
		Short: "Lister vos événements",
		RunE: app.Guard.RequireDepartment(func(cmd *cobra.Command, args []string, actor *domain.User) error {
			events, err := app.Events.ListMine(cmd.Context(), actor)
			if err != nil {
				return err
			}
			renderEvents(cmd, "Vos événements", events)
			return nil
		}, domain.DepartmentSupport),
	}
}

func renderEvents(cmd *cobra.Command, title string, events []*domain.Event) {
	out := cmd.OutOrStdout()
	printHeader(out, title)
	if len(events) == 0 {
		fmt.Fprintln(out, "Aucun événement trouvé")
		return
	}
	for _, e := range events {
		support := "non assigné"
		if e.SupportContactID != nil {
			support = fmt.Sprintf("%d", *e.SupportContactID)
		}
		fmt.Fprintf(out, "  #%-4d %-30s %s  lieu: %-20s support: %s\n",
			e.ID, e.Name, formatEventTime(e.EventStart), e.Location, support)
	}
	printSeparator(out)
}

func formatEventTime(t time.Time) string {
	return t.Format(eventTimeLayout)
}
