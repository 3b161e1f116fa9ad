package cli

import (
	"aimlink-client/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as the agency administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			var err error
			if email == "" {
				if email, err = c.console.Ask(ctx, "Email", ""); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.console.Ask(ctx, "Password", ""); err != nil {
					return err
				}
			}

			session, err := c.uc.Login.Execute(ctx, email, password)
			if err != nil {
				return alert(err, domain.MsgInvalidCredentials)
			}
			fmt.Fprintf(c.out(), "%s as %s\n", domain.MsgLoggedIn, session.Email)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Administrator email")
	cmd.Flags().String("password", "", "Administrator password")
	return cmd
}

func (c *CLI) LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored admin session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.uc.Logout.Execute(cmd.Context()); err != nil {
				return alert(err, "Failed to logout")
			}
			fmt.Fprintln(c.out(), "Logged out")
			return nil
		},
	}
}

func (c *CLI) DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := c.uc.Dashboard.Execute(cmd.Context())
			if err != nil {
				return alert(err, "Failed to load dashboard")
			}
			printDashboard(c.out(), view)
			return nil
		},
	}
}

func (c *CLI) AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage properties and leads (requires login)",
	}

	properties := &cobra.Command{
		Use:   "properties",
		Short: "Manage property listings",
	}
	properties.AddCommand(
		c.adminListPropertiesCmd(),
		c.adminAddPropertyCmd(),
		c.adminEditPropertyCmd(),
		c.adminDeletePropertyCmd(),
	)

	leads := &cobra.Command{
		Use:   "leads",
		Short: "Manage visit requests",
	}
	leads.AddCommand(c.adminListLeadsCmd(), c.adminUpdateLeadCmd())

	cmd.AddCommand(properties, leads)
	return cmd
}

func (c *CLI) adminListPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			properties, err := c.uc.AdminListProperties.Execute(cmd.Context(), domain.PropertyStatus(status))
			if err != nil {
				return alert(err, "Failed to load properties")
			}
			if len(properties) == 0 {
				fmt.Fprintln(c.out(), domain.MsgNoPropertiesFound)
				return nil
			}
			printPropertyList(c.out(), properties)
			return nil
		},
	}
	cmd.Flags().String("status", "", "Status filter: active, draft, sold (server default is active)")
	return cmd
}

func (c *CLI) adminDeletePropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.uc.DeleteProperty.Execute(cmd.Context(), args[0])
			if declined(c.out(), err) {
				return nil
			}
			if err != nil {
				return alert(err, domain.MsgDeleteFailed)
			}
			fmt.Fprintln(c.out(), domain.MsgDeleted)
			return nil
		},
	}
}

func (c *CLI) adminAddPropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property with the three-step wizard",
		Long: "Without flags the wizard asks for basic info, details and media step by step.\n" +
			"With --title the property is built from flags and published directly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("title") {
				created, err := c.runWizard(ctx)
				if err != nil {
					return alert(err, domain.MsgPublishFailed)
				}
				fmt.Fprintf(c.out(), "%s (%s)\n", domain.MsgPublished, created.ID)
				return nil
			}

			state, err := c.wizardFromFlags(cmd)
			if err != nil {
				return alert(err, domain.MsgPublishFailed)
			}
			created, err := c.uc.PublishProperty.Execute(ctx, state)
			if declined(c.out(), err) {
				return nil
			}
			if err != nil {
				return alert(err, domain.MsgPublishFailed)
			}
			fmt.Fprintf(c.out(), "%s (%s)\n", domain.MsgPublished, created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("title", "", "Property title")
	f.String("area", string(domain.AreaBeirut), "Area")
	f.String("location", "", "Location detail")
	f.String("price", "", "Price in USD")
	f.String("type", string(domain.TypeApartment), "Property type")
	f.String("size", "", "Size in sqm")
	f.String("bedrooms", "", "Bedrooms")
	f.String("bathrooms", "", "Bathrooms")
	f.String("floor", "", "Floor level")
	f.String("view", "", "View type")
	f.String("description", "", "Description")
	f.StringSlice("image", nil, "Image file path or URL (repeatable, up to 10)")
	f.String("lat", "", "Latitude")
	f.String("lng", "", "Longitude")
	return cmd
}

// wizardFromFlags проводит мастер по тем же шагам, что и интерактивный режим.
func (c *CLI) wizardFromFlags(cmd *cobra.Command) (domain.Step3, error) {
	f := cmd.Flags()
	get := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}

	draft := domain.NewWizard().Data()
	draft.Basic = domain.BasicInfo{
		Title:          get("title"),
		Area:           get("area"),
		LocationDetail: get("location"),
		PriceUSD:       get("price"),
		PropertyType:   get("type"),
	}
	draft.Specs = domain.Specs{
		SizeSqm:     get("size"),
		Bedrooms:    get("bedrooms"),
		Bathrooms:   get("bathrooms"),
		FloorLevel:  get("floor"),
		ViewType:    get("view"),
		Description: get("description"),
	}
	draft.Media.Latitude = get("lat")
	draft.Media.Longitude = get("lng")

	var state domain.WizardState = domain.Step1{Draft: draft}
	var err error
	for state.Step() < 3 {
		if state, err = domain.Next(state); err != nil {
			return domain.Step3{}, err
		}
	}

	step3 := state.(domain.Step3)
	images, _ := f.GetStringSlice("image")
	for _, ref := range images {
		data, err := LoadImage(ref)
		if err != nil {
			return domain.Step3{}, err
		}
		if step3, err = step3.AddImage(data); err != nil {
			return domain.Step3{}, err
		}
	}
	return step3, nil
}

// runWizard - интерактивный мастер. Возврат назад сохраняет введенные значения.
// Неудачная публикация или отказ от подтверждения оставляют мастер на третьем шаге.
func (c *CLI) runWizard(ctx context.Context) (*domain.Property, error) {
	state := domain.NewWizard()
	for {
		fmt.Fprintf(c.out(), "\nStep %d of 3\n", state.Step())

		switch s := state.(type) {
		case domain.Step1:
			draft, err := c.askBasic(ctx, s.Data())
			if err != nil {
				return nil, err
			}
			state, err = domain.Next(domain.Step1{Draft: draft})
			c.printValidation(err)

		case domain.Step2:
			draft, err := c.askSpecs(ctx, s.Data())
			if err != nil {
				return nil, err
			}
			action, err := c.console.Choose(ctx, "Continue", []string{"next", "back"}, "next")
			if err != nil {
				return nil, err
			}
			if action == "back" {
				state, _ = domain.Back(domain.Step2{Draft: draft})
				continue
			}
			state, err = domain.Next(domain.Step2{Draft: draft})
			c.printValidation(err)

		case domain.Step3:
			step3, err := c.askMedia(ctx, s)
			if err != nil {
				return nil, err
			}
			action, err := c.console.Choose(ctx, "Continue", []string{"publish", "back"}, "publish")
			if err != nil {
				return nil, err
			}
			if action == "back" {
				state, _ = domain.Back(step3)
				continue
			}

			created, err := c.uc.PublishProperty.Execute(ctx, step3)
			switch {
			case err == nil:
				return created, nil
			case declined(c.out(), err):
			case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrNotAuthenticated),
				errors.Is(err, context.Canceled):
				return nil, err
			default:
				fmt.Fprintln(c.out(), alert(err, domain.MsgPublishFailed).Error())
			}
			state = step3
		}
	}
}

func (c *CLI) printValidation(err error) {
	if err != nil {
		fmt.Fprintf(c.out(), "Error: %s\n", err.Error())
	}
}

func (c *CLI) askBasic(ctx context.Context, draft domain.Draft) (domain.Draft, error) {
	b := draft.Basic
	var err error
	if b.Title, err = c.console.Ask(ctx, "Title *", b.Title); err != nil {
		return draft, err
	}
	if b.Area, err = c.console.Choose(ctx, "Area *", areaOptions(), b.Area); err != nil {
		return draft, err
	}
	if b.LocationDetail, err = c.console.Ask(ctx, "Location detail *", b.LocationDetail); err != nil {
		return draft, err
	}
	if b.PriceUSD, err = c.console.Ask(ctx, "Price (USD) *", b.PriceUSD); err != nil {
		return draft, err
	}
	if b.PropertyType, err = c.console.Choose(ctx, "Property type *", typeOptions(), b.PropertyType); err != nil {
		return draft, err
	}
	draft.Basic = b
	return draft, nil
}

func (c *CLI) askSpecs(ctx context.Context, draft domain.Draft) (domain.Draft, error) {
	s := draft.Specs
	fields := []struct {
		label string
		value *string
	}{
		{"Size (sqm) *", &s.SizeSqm},
		{"Bedrooms", &s.Bedrooms},
		{"Bathrooms", &s.Bathrooms},
		{"Floor level", &s.FloorLevel},
		{"View type", &s.ViewType},
		{"Description *", &s.Description},
	}
	for _, field := range fields {
		v, err := c.console.Ask(ctx, field.label, *field.value)
		if err != nil {
			return draft, err
		}
		*field.value = v
	}
	draft.Specs = s
	return draft, nil
}

func (c *CLI) askMedia(ctx context.Context, s domain.Step3) (domain.Step3, error) {
	for {
		fmt.Fprintf(c.out(), "Images: %d/%d\n", len(s.Media.Images), domain.MaxImages)
		answer, err := c.console.Ask(ctx, "Add image path or URL (rm N to remove, empty to continue)", "")
		if err != nil {
			return s, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			break
		}
		if idx, ok := strings.CutPrefix(answer, "rm "); ok {
			n, err := strconv.Atoi(strings.TrimSpace(idx))
			if err == nil {
				s = s.RemoveImage(n - 1)
			}
			continue
		}
		data, err := LoadImage(answer)
		if err != nil {
			fmt.Fprintf(c.out(), "Error: %s\n", err.Error())
			continue
		}
		if s, err = s.AddImage(data); err != nil {
			c.printValidation(err)
		}
	}

	var err error
	if s.Media.Latitude, err = c.console.Ask(ctx, "Latitude", s.Media.Latitude); err != nil {
		return s, err
	}
	if s.Media.Longitude, err = c.console.Ask(ctx, "Longitude", s.Media.Longitude); err != nil {
		return s, err
	}
	return s, nil
}

func (c *CLI) adminEditPropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			form, _, err := c.uc.LoadPropertyForEdit.Execute(ctx, args[0])
			if err != nil {
				return alert(err, domain.MsgLoadDetailsFailed)
			}

			fields := editFields(&form)
			if anyChanged(cmd, fields) {
				for _, field := range fields {
					if cmd.Flags().Changed(field.flag) {
						*field.value, _ = cmd.Flags().GetString(field.flag)
					}
				}
			} else {
				for _, field := range fields {
					var v string
					switch field.flag {
					case "status":
						v, err = c.console.Choose(ctx, field.label, statusOptions(), *field.value)
					case "area":
						v, err = c.console.Choose(ctx, field.label, areaOptions(), *field.value)
					case "type":
						v, err = c.console.Choose(ctx, field.label, typeOptions(), *field.value)
					default:
						v, err = c.console.Ask(ctx, field.label, *field.value)
					}
					if err != nil {
						return err
					}
					*field.value = v
				}
			}

			updated, err := c.uc.UpdateProperty.Execute(ctx, args[0], form)
			if err != nil {
				return alert(err, domain.MsgUpdateFailed)
			}
			fmt.Fprintf(c.out(), "%s (%s)\n", domain.MsgUpdated, updated.ID)
			return nil
		},
	}
	for _, field := range editFields(&domain.EditForm{}) {
		cmd.Flags().String(field.flag, "", field.label)
	}
	return cmd
}

type editField struct {
	flag  string
	label string
	value *string
}

func editFields(f *domain.EditForm) []editField {
	return []editField{
		{"title", "Title *", &f.Title},
		{"area", "Area *", &f.Area},
		{"location", "Location detail *", &f.LocationDetail},
		{"price", "Price (USD) *", &f.PriceUSD},
		{"type", "Property type *", &f.PropertyType},
		{"size", "Size (sqm) *", &f.SizeSqm},
		{"bedrooms", "Bedrooms", &f.Bedrooms},
		{"bathrooms", "Bathrooms", &f.Bathrooms},
		{"floor", "Floor level", &f.FloorLevel},
		{"view", "View type", &f.ViewType},
		{"description", "Description *", &f.Description},
		{"status", "Status", &f.Status},
	}
}

func anyChanged(cmd *cobra.Command, fields []editField) bool {
	for _, field := range fields {
		if cmd.Flags().Changed(field.flag) {
			return true
		}
	}
	return false
}

func (c *CLI) adminListLeadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visit requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			leads, err := c.uc.ListLeads.Execute(cmd.Context(), domain.LeadStatus(status))
			if err != nil {
				return alert(err, "Failed to load leads")
			}
			printLeads(c.out(), leads)
			return nil
		},
	}
	cmd.Flags().String("status", "", "Status filter: pending, contacted, completed")
	return cmd
}

func (c *CLI) adminUpdateLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Change the status of a visit request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("status")
			filter, _ := cmd.Flags().GetString("filter")

			leads, err := c.uc.UpdateLeadStatus.Execute(cmd.Context(), args[0], domain.LeadStatus(target), domain.LeadStatus(filter))
			if err != nil {
				return alert(err, domain.MsgLeadUpdateFailed)
			}
			fmt.Fprintln(c.out(), domain.MsgLeadUpdated)
			printLeads(c.out(), leads)
			return nil
		},
	}
	cmd.Flags().String("status", "", "New status: contacted or completed")
	cmd.Flags().String("filter", "", "Status filter for the refreshed list")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func areaOptions() []string {
	options := make([]string, 0, len(domain.Areas))
	for _, a := range domain.Areas {
		options = append(options, string(a))
	}
	return options
}

func typeOptions() []string {
	options := make([]string, 0, len(domain.PropertyTypes))
	for _, t := range domain.PropertyTypes {
		options = append(options, string(t))
	}
	return options
}

func statusOptions() []string {
	options := make([]string, 0, len(domain.PropertyStatuses))
	for _, s := range domain.PropertyStatuses {
		options = append(options, string(s))
	}
	return options
}
