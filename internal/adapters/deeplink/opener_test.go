package deeplink

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanOpenMatchesSchemes(t *testing.T) {
	o := NewBrowserOpener([]string{"https", "geo:", " WhatsApp "})

	assert.True(t, o.CanOpen("https://wa.me/9613384869?text=hi"))
	assert.True(t, o.CanOpen("geo:33.89,35.5?q=33.89,35.5"))
	assert.True(t, o.CanOpen("whatsapp://send?phone=9613384869"))
	assert.False(t, o.CanOpen("sms:9613384869"))
	assert.False(t, o.CanOpen("not a url"))
}

func TestBrowserOpenerWrapsFailure(t *testing.T) {
	o := NewBrowserOpener([]string{"https"})
	var opened []string
	o.open = func(u string) error {
		opened = append(opened, u)
		return errors.New("no handler")
	}

	err := o.Open(context.Background(), "https://aimlinkproperty.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
	assert.Equal(t, []string{"https://aimlinkproperty.com"}, opened)
}

func TestBrowserOpenerRespectsCancelledContext(t *testing.T) {
	o := NewBrowserOpener([]string{"https"})
	o.open = func(string) error {
		t.Fatal("open must not be called")
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, o.Open(ctx, "https://aimlinkproperty.com"), context.Canceled)
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	o, err := New("print", &buf, []string{"mailto"})
	require.NoError(t, err)

	assert.True(t, o.CanOpen("mailto:?subject=Villa"))
	require.NoError(t, o.Open(context.Background(), "mailto:?subject=Villa"))
	assert.Equal(t, "Open: mailto:?subject=Villa\n", buf.String())

	_, err = New("carrier-pigeon", &buf, nil)
	assert.Error(t, err)
}
