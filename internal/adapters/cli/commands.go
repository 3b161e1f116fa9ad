package cli

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/core/port/usecases_port"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// UseCases - все сценарии, доступные из командной строки.
type UseCases struct {
	Login          usecases_port.LoginUseCasePort
	Logout         usecases_port.LogoutUseCasePort
	CurrentSession usecases_port.CurrentSessionUseCasePort
	Dashboard      usecases_port.GetDashboardUseCasePort

	HomeCatalog     usecases_port.HomeCatalogUseCasePort
	Listings        usecases_port.ListingsUseCasePort
	MapView         usecases_port.MapViewUseCasePort
	PropertyDetail  usecases_port.PropertyDetailUseCasePort
	RequestVisit    usecases_port.RequestVisitUseCasePort
	ContactWhatsApp usecases_port.ContactWhatsAppUseCasePort
	ViewOnMap       usecases_port.ViewOnMapUseCasePort
	ShareProperty   usecases_port.SharePropertyUseCasePort

	AdminListProperties usecases_port.AdminListPropertiesUseCasePort
	DeleteProperty      usecases_port.DeletePropertyUseCasePort
	PublishProperty     usecases_port.PublishPropertyUseCasePort
	LoadPropertyForEdit usecases_port.LoadPropertyForEditUseCasePort
	UpdateProperty      usecases_port.UpdatePropertyUseCasePort
	ListLeads           usecases_port.ListLeadsUseCasePort
	UpdateLeadStatus    usecases_port.UpdateLeadStatusUseCasePort
}

// CLI - оболочка приложения: каждая команда соответствует экрану.
type CLI struct {
	uc      UseCases
	console *Console
	logger  port.LoggerPort
}

func New(uc UseCases, console *Console, logger port.LoggerPort) *CLI {
	return &CLI{uc: uc, console: console, logger: logger}
}

func (c *CLI) out() io.Writer {
	return c.console.Out()
}

// RootCmd собирает дерево команд. Без подкоманды показывается заставка и главная страница.
func (c *CLI) RootCmd(appName string) *cobra.Command {
	var assumeYes bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Aimlink Property - browse listings and manage the agency catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.console.SetAssumeYes(assumeYes)
			ctx, traceID := contextkeys.ContextWithNewTraceID(cmd.Context())
			cmdLogger := c.logger.WithFields(port.Fields{"command": cmd.CommandPath(), "trace_id": traceID})
			cmd.SetContext(contextkeys.ContextWithLogger(ctx, cmdLogger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printSplash(c.out())
			return c.showHome(cmd.Context(), "")
		},
	}
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer OK to every confirmation dialog")

	root.AddCommand(
		c.SplashCmd(),
		c.HomeCmd(),
		c.ListingsCmd(),
		c.MapCmd(),
		c.ContactCmd(),
		c.PropertyCmd(),
		c.LoginCmd(),
		c.LogoutCmd(),
		c.DashboardCmd(),
		c.AdminCmd(),
	)
	return root
}

func (c *CLI) SplashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splash",
		Short: "Show the brand splash screen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printSplash(c.out())
		},
	}
}

func (c *CLI) HomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show featured properties, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			return c.showHome(cmd.Context(), query)
		},
	}
	cmd.Flags().StringP("query", "q", "", "Search in title, location, area and type")
	return cmd
}

func (c *CLI) showHome(ctx context.Context, query string) error {
	view, err := c.uc.HomeCatalog.Execute(ctx, query)
	if err != nil {
		return alert(err, domain.MsgNoPropertiesFound)
	}
	printCatalog(c.out(), view)
	return nil
}

func (c *CLI) ListingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse all active listings with filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			area, _ := flags.GetString("area")
			propertyType, _ := flags.GetString("type")
			query, _ := flags.GetString("query")

			req := domain.ListingsRequest{
				Area:         domain.Area(area),
				PropertyType: domain.PropertyType(propertyType),
				Query:        query,
			}
			if flags.Changed("min-price") {
				v, _ := flags.GetFloat64("min-price")
				req.MinPrice = &v
			}
			if flags.Changed("max-price") {
				v, _ := flags.GetFloat64("max-price")
				req.MaxPrice = &v
			}

			properties, err := c.uc.Listings.Execute(cmd.Context(), req)
			if err != nil {
				return alert(err, domain.MsgNoPropertiesFound)
			}
			if len(properties) == 0 {
				fmt.Fprintln(c.out(), domain.MsgNoPropertiesFound)
				return nil
			}
			printPropertyList(c.out(), properties)
			return nil
		},
	}
	cmd.Flags().String("area", "", "Area: Beirut, Mount Lebanon, North Lebanon, Keserwan")
	cmd.Flags().String("type", "", "Type: Apartment, Villa, House, Chalet, Office, Land")
	cmd.Flags().Float64("min-price", 0, "Minimum price in USD")
	cmd.Flags().Float64("max-price", 0, "Maximum price in USD")
	cmd.Flags().StringP("query", "q", "", "Search in title, location, area and type")
	return cmd
}

func (c *CLI) MapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Show active properties that have coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.uc.MapView.Execute(cmd.Context(), c.out()); err != nil {
				return alert(err, "Failed to load map")
			}
			return nil
		},
	}
}

// ContactCmd - общий вопрос агентству в WhatsApp с главного экрана.
func (c *CLI) ContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Contact the agency on WhatsApp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := c.uc.ContactWhatsApp.Execute(cmd.Context(), "")
			if err != nil {
				return alert(err, domain.MsgWhatsAppUnavailable)
			}
			fmt.Fprintf(c.out(), "Opened %s\n", opened)
			return nil
		},
	}
}
