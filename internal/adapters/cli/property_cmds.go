package cli

import (
	"aimlink-client/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) PropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "View a property and act on it",
	}
	cmd.AddCommand(
		c.propertyShowCmd(),
		c.propertyContactCmd(),
		c.propertyVisitCmd(),
		c.propertyShareCmd(),
		c.propertyOpenMapCmd(),
	)
	return cmd
}

func (c *CLI) loadProperty(ctx context.Context, id string) (*domain.Property, error) {
	p, err := c.uc.PropertyDetail.Execute(ctx, id)
	if err != nil {
		return nil, alert(err, domain.MsgLoadDetailsFailed)
	}
	return p, nil
}

func (c *CLI) propertyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show property details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printPropertyCard(c.out(), p)
			fmt.Fprintf(c.out(), "\nContact: %s\n", domain.ContactPhoneDisplay)
			return nil
		},
	}
}

func (c *CLI) propertyContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact [id]",
		Short: "Ask about the property on WhatsApp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opened, err := c.uc.ContactWhatsApp.Execute(cmd.Context(), p.Title)
			if err != nil {
				return alert(err, domain.MsgWhatsAppUnavailable)
			}
			fmt.Fprintf(c.out(), "Opened %s\n", opened)
			return nil
		},
	}
}

func (c *CLI) propertyVisitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit [id]",
		Short: "Request a visit for the property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, _ := cmd.Flags().GetString("name")
			phone, _ := cmd.Flags().GetString("phone")

			var err error
			if !cmd.Flags().Changed("name") {
				if name, err = c.console.Ask(ctx, "Your name", ""); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("phone") {
				if phone, err = c.console.Ask(ctx, "Phone number", ""); err != nil {
					return err
				}
			}

			if _, err := c.uc.RequestVisit.Execute(ctx, args[0], name, phone); err != nil {
				return alert(err, domain.MsgVisitFailed)
			}
			fmt.Fprintln(c.out(), domain.MsgVisitSubmitted)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("phone", "", "Your phone number")
	return cmd
}

func (c *CLI) propertyShareCmd() *cobra.Command {
	channels := make([]string, 0, len(domain.ShareChannels))
	for _, ch := range domain.ShareChannels {
		channels = append(channels, string(ch))
	}

	cmd := &cobra.Command{
		Use:   "share [id]",
		Short: "Share the property via WhatsApp, email or SMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := c.loadProperty(ctx, args[0])
			if err != nil {
				return err
			}

			channel, _ := cmd.Flags().GetString("via")
			if channel == "" {
				if channel, err = c.console.Choose(ctx, "Share via", channels, string(domain.ShareWhatsApp)); err != nil {
					return err
				}
			}

			message, err := c.uc.ShareProperty.Execute(ctx, *p, domain.ShareChannel(channel))
			if err != nil {
				var linkErr *domain.LinkError
				if errors.As(err, &linkErr) {
					fmt.Fprintln(c.out(), message)
					return alert(err, shareFailure(domain.ShareChannel(channel)))
				}
				return alert(err, "Failed to share property")
			}
			if domain.ShareChannel(channel) == domain.ShareDetails {
				fmt.Fprintln(c.out(), message)
			}
			return nil
		},
	}
	cmd.Flags().String("via", "", "Channel: "+strings.Join(channels, ", "))
	return cmd
}

func shareFailure(channel domain.ShareChannel) string {
	switch channel {
	case domain.ShareEmail:
		return domain.MsgEmailUnavailable
	case domain.ShareSMS:
		return domain.MsgSMSUnavailable
	default:
		return domain.MsgWhatsAppUnavailable
	}
}

func (c *CLI) propertyOpenMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-map [id]",
		Short: "Open the property location in maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opened, err := c.uc.ViewOnMap.Execute(cmd.Context(), *p)
			if err != nil {
				if errors.Is(err, domain.ErrNoCoordinates) {
					return &Alert{Title: "Error", Message: domain.ErrNoCoordinates.Error(), Err: err}
				}
				return alert(err, domain.MsgMapOpenFailed)
			}
			fmt.Fprintf(c.out(), "Opened %s\n", opened)
			return nil
		},
	}
}
