package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProperty() Property {
	lat, lng := 33.8938, 35.5018
	bedrooms := 3
	return Property{
		ID:             "p1",
		Title:          "Luxury Penthouse in Achrafieh",
		Area:           AreaBeirut,
		LocationDetail: "Achrafieh",
		PriceUSD:       850000,
		PropertyType:   TypeApartment,
		SizeSqm:        320,
		Bedrooms:       &bedrooms,
		Description:    "Stunning penthouse",
		Latitude:       &lat,
		Longitude:      &lng,
		Status:         StatusActive,
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$450,000", FormatPrice(450000))
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
	assert.Equal(t, "$999", FormatPrice(999))
	assert.Equal(t, "PENDING", StatusBadge("pending"))
}

func TestShareMessage(t *testing.T) {
	msg := ShareMessage(sampleProperty())
	assert.True(t, strings.HasPrefix(msg, "🏠 Luxury Penthouse in Achrafieh\n"))
	assert.Contains(t, msg, "💰 Price: $850,000")
	assert.Contains(t, msg, "📍 Location: Beirut - Achrafieh")
	assert.Contains(t, msg, "📐 Size: 320 sqm")
	assert.Contains(t, msg, "🛏️ Bedrooms: 3")
	assert.NotContains(t, msg, "Bathrooms")
	assert.True(t, strings.HasSuffix(msg, BrandLine))
}

func TestShareLink(t *testing.T) {
	p := sampleProperty()

	plan, err := ShareLink(ShareEmail, p)
	require.NoError(t, err)
	u, err := url.Parse(plan.Primary)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "Property: Luxury Penthouse in Achrafieh", u.Query().Get("subject"))
	assert.Equal(t, ShareMessage(p), u.Query().Get("body"))

	plan, err = ShareLink(ShareWhatsApp, p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plan.Primary, "whatsapp://send?text="))
	assert.True(t, strings.HasPrefix(plan.Fallback, "https://wa.me/?text="))

	plan, err = ShareLink(ShareSMS, p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plan.Primary, "sms:?body="))

	_, err = ShareLink("pigeon", p)
	assert.Error(t, err)
}

func TestShareLinkBodyKeepsSpaces(t *testing.T) {
	p := sampleProperty()
	p.Title = "Sea View Flat + Garden"

	for _, channel := range []ShareChannel{ShareWhatsApp, ShareEmail, ShareSMS} {
		t.Run(string(channel), func(t *testing.T) {
			plan, err := ShareLink(channel, p)
			require.NoError(t, err)
			assert.NotContains(t, plan.Primary, "+")

			raw := plan.Primary[strings.LastIndex(plan.Primary, "=")+1:]
			decoded, err := url.PathUnescape(raw)
			require.NoError(t, err)
			assert.Equal(t, ShareMessage(p), decoded)
			assert.Contains(t, decoded, "🏠 Sea View Flat + Garden")
		})
	}

	plan, err := ShareLink(ShareEmail, p)
	require.NoError(t, err)
	assert.Contains(t, plan.Primary, "subject=Property%3A%20Sea%20View%20Flat%20%2B%20Garden&")
}

func TestWhatsAppContact(t *testing.T) {
	plan := WhatsAppContact(PlatformAndroid, ContactText("Villa"))
	assert.Equal(t, "whatsapp://send?phone=9613384869&text=Hello%2C%20I%27m%20interested%20in%20the%20property%3A%20Villa", plan.Primary)
	assert.True(t, strings.HasPrefix(plan.Fallback, "https://wa.me/9613384869?text="))

	web := WhatsAppContact(PlatformWeb, GeneralInquiryText)
	assert.True(t, strings.HasPrefix(web.Primary, "https://wa.me/9613384869"))
	assert.Empty(t, web.Fallback)
}

func TestMapLink(t *testing.T) {
	p := sampleProperty()

	ios, err := MapLink(PlatformIOS, p)
	require.NoError(t, err)
	assert.Equal(t, "maps://maps.google.com/maps?q=33.8938,35.5018", ios.Primary)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=33.8938,35.5018", ios.Fallback)

	android, err := MapLink(PlatformAndroid, p)
	require.NoError(t, err)
	assert.Equal(t, "geo:33.8938,35.5018?q=33.8938,35.5018", android.Primary)

	desktop, err := MapLink(PlatformDesktop, p)
	require.NoError(t, err)
	assert.Equal(t, ios.Fallback, desktop.Primary)

	p.Latitude = nil
	_, err = MapLink(PlatformIOS, p)
	assert.ErrorIs(t, err, ErrNoCoordinates)
}
