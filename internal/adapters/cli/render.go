package cli

import (
	"aimlink-client/internal/core/domain"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const splashBanner = `
    ___    _           __    _       __
   /   |  (_)___ ___  / /   (_)___  / /__
  / /| | / / __ '__ \/ /   / / __ \/ //_/
 / ___ |/ / / / / / / /___/ / / / / ,<
/_/  |_/_/_/ /_/ /_/_____/_/_/ /_/_/|_|
            P R O P E R T Y
   Real Estate, Real Direction
`

func printSplash(w io.Writer) {
	fmt.Fprint(w, splashBanner)
}

func printPropertyList(w io.Writer, properties []domain.Property) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAREA\tTYPE\tPRICE\tSIZE\tSTATUS")
	for _, p := range properties {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s sqm\t%s\n",
			p.ID, p.Title, p.Area, p.PropertyType, domain.FormatPrice(p.PriceUSD),
			trimFloat(p.SizeSqm), domain.StatusBadge(string(p.Status)))
	}
	tw.Flush()
}

func printCatalog(w io.Writer, view *domain.CatalogView) {
	fmt.Fprintf(w, "%s\n\n", view.Title)
	if len(view.Properties) == 0 {
		fmt.Fprintln(w, view.EmptyText)
		return
	}
	printPropertyList(w, view.Properties)
}

func printPropertyCard(w io.Writer, p *domain.Property) {
	fmt.Fprintf(w, "%s\n", p.Title)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", len([]rune(p.Title))))
	fmt.Fprintf(w, "Price:     %s\n", domain.FormatPrice(p.PriceUSD))
	fmt.Fprintf(w, "Location:  %s - %s\n", p.Area, p.LocationDetail)
	fmt.Fprintf(w, "Type:      %s\n", p.PropertyType)
	fmt.Fprintf(w, "Size:      %s sqm\n", trimFloat(p.SizeSqm))
	if p.Bedrooms != nil {
		fmt.Fprintf(w, "Bedrooms:  %d\n", *p.Bedrooms)
	}
	if p.Bathrooms != nil {
		fmt.Fprintf(w, "Bathrooms: %d\n", *p.Bathrooms)
	}
	if p.FloorLevel != nil {
		fmt.Fprintf(w, "Floor:     %s\n", *p.FloorLevel)
	}
	if p.ViewType != nil {
		fmt.Fprintf(w, "View:      %s\n", *p.ViewType)
	}
	fmt.Fprintf(w, "Status:    %s\n", domain.StatusBadge(string(p.Status)))
	fmt.Fprintf(w, "Images:    %d\n", len(p.Images))
	if p.HasCoordinates() {
		fmt.Fprintf(w, "Location:  %v, %v\n", *p.Latitude, *p.Longitude)
	}
	fmt.Fprintf(w, "\n%s\n", p.Description)
}

func printLeads(w io.Writer, leads []domain.Lead) {
	if len(leads) == 0 {
		fmt.Fprintln(w, "No leads found")
		return
	}
	for _, l := range leads {
		fmt.Fprintf(w, "[%s] %s - %s (%s)\n", domain.StatusBadge(string(l.Status)), l.Name, l.Phone, l.ID)
		fmt.Fprintf(w, "  Property: %s\n", l.PropertyID)
		if l.Message != "" {
			fmt.Fprintf(w, "  %s\n", l.Message)
		}
		if !l.CreatedAt.IsZero() {
			fmt.Fprintf(w, "  %s\n", l.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		var labels []string
		for _, a := range l.AvailableActions() {
			labels = append(labels, fmt.Sprintf("%s (--status %s)", a.Label, a.Target))
		}
		if len(labels) > 0 {
			fmt.Fprintf(w, "  Actions: %s\n", strings.Join(labels, ", "))
		}
	}
}

func printDashboard(w io.Writer, view *domain.DashboardView) {
	fmt.Fprintf(w, "Welcome back, %s\n\n", view.Email)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total properties\t%d\n", view.Stats.TotalProperties)
	fmt.Fprintf(tw, "Active\t%d\n", view.Stats.ActiveProperties)
	fmt.Fprintf(tw, "Draft\t%d\n", view.Stats.DraftProperties)
	fmt.Fprintf(tw, "Sold\t%d\n", view.Stats.SoldProperties)
	fmt.Fprintf(tw, "Pending leads\t%d\n", view.Stats.PendingLeads)
	fmt.Fprintf(tw, "Total leads\t%d\n", view.Stats.TotalLeads)
	tw.Flush()
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
