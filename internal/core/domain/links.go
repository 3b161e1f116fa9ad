package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Контакты агентства.
const (
	ContactPhone        = "9613384869"
	ContactPhoneDisplay = "+961 3 384 869"
	BrandLine           = "Aimlink Property - Real Estate, Real Direction"

	GeneralInquiryText = "Hello, I am interested in your properties"
	VisitRequestText   = "Visit request from mobile app"
)

// Platform определяет, какие схемы ссылок пробовать в первую очередь.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformDesktop Platform = "desktop"
)

// LinkPlan - основная ссылка и запасная, если основную открыть нельзя.
type LinkPlan struct {
	Primary  string
	Fallback string
}

// ContactText - текст первого сообщения по конкретному объекту.
func ContactText(title string) string {
	return fmt.Sprintf("Hello, I'm interested in the property: %s", title)
}

// WhatsAppContact - ссылка на чат с агентством.
// На web сразу используется wa.me.
func WhatsAppContact(platform Platform, text string) LinkPlan {
	web := fmt.Sprintf("https://wa.me/%s?text=%s", ContactPhone, encodeComponent(text))
	if platform == PlatformWeb {
		return LinkPlan{Primary: web}
	}
	return LinkPlan{
		Primary:  fmt.Sprintf("whatsapp://send?phone=%s&text=%s", ContactPhone, encodeComponent(text)),
		Fallback: web,
	}
}

// encodeComponent кодирует текст для параметра ссылки. Пробел - %20:
// mailto: и sms: не декодируют '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ManualContactMessage показывается, когда открыть WhatsApp не удалось.
func ManualContactMessage() string {
	return fmt.Sprintf("Please contact us on WhatsApp:\n\n%s\n\nOr call us directly.", ContactPhoneDisplay)
}

// MapLink - ссылка на точку объекта в картах.
func MapLink(platform Platform, p Property) (LinkPlan, error) {
	if !p.HasCoordinates() {
		return LinkPlan{}, ErrNoCoordinates
	}
	coords := fmt.Sprintf("%v,%v", *p.Latitude, *p.Longitude)
	web := "https://www.google.com/maps/search/?api=1&query=" + coords
	switch platform {
	case PlatformIOS:
		return LinkPlan{Primary: "maps://maps.google.com/maps?q=" + coords, Fallback: web}, nil
	case PlatformAndroid:
		return LinkPlan{Primary: fmt.Sprintf("geo:%s?q=%s", coords, coords), Fallback: web}, nil
	default:
		return LinkPlan{Primary: web}, nil
	}
}

// ShareChannel - куда отправить описание объекта.
type ShareChannel string

const (
	ShareWhatsApp ShareChannel = "whatsapp"
	ShareEmail    ShareChannel = "email"
	ShareSMS      ShareChannel = "sms"
	ShareDetails  ShareChannel = "details"
)

var ShareChannels = []ShareChannel{ShareWhatsApp, ShareEmail, ShareSMS, ShareDetails}

// ShareMessage собирает текст карточки объекта для отправки.
func ShareMessage(p Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏠 %s\n\n", p.Title)
	fmt.Fprintf(&b, "💰 Price: %s\n", FormatPrice(p.PriceUSD))
	fmt.Fprintf(&b, "📍 Location: %s - %s\n", p.Area, p.LocationDetail)
	fmt.Fprintf(&b, "🏢 Type: %s\n", p.PropertyType)
	fmt.Fprintf(&b, "📐 Size: %s sqm\n", formatNumber(p.SizeSqm))
	if p.Bedrooms != nil {
		fmt.Fprintf(&b, "🛏️ Bedrooms: %d\n", *p.Bedrooms)
	}
	if p.Bathrooms != nil {
		fmt.Fprintf(&b, "🚿 Bathrooms: %d\n", *p.Bathrooms)
	}
	fmt.Fprintf(&b, "\n%s\n\n", p.Description)
	fmt.Fprintf(&b, "📞 Contact: %s\n", ContactPhoneDisplay)
	fmt.Fprintf(&b, "🏢 %s", BrandLine)
	return b.String()
}

// ShareLink - ссылка для канала. Для ShareDetails ссылки нет.
func ShareLink(channel ShareChannel, p Property) (LinkPlan, error) {
	text := encodeComponent(ShareMessage(p))
	switch channel {
	case ShareWhatsApp:
		return LinkPlan{Primary: "whatsapp://send?text=" + text, Fallback: "https://wa.me/?text=" + text}, nil
	case ShareEmail:
		subject := encodeComponent("Property: " + p.Title)
		return LinkPlan{Primary: fmt.Sprintf("mailto:?subject=%s&body=%s", subject, text)}, nil
	case ShareSMS:
		return LinkPlan{Primary: "sms:?body=" + text}, nil
	case ShareDetails:
		return LinkPlan{}, nil
	default:
		return LinkPlan{}, fmt.Errorf("unknown share channel %q", channel)
	}
}
