package loginview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://host:1234/path%20here", want: "https://host:1234"},
		{in: "https://host/path", want: "https://host"},
		{in: "http://Host.Example.com:80/x?y=z", want: "http://host.example.com"},
		{in: "https://host:443", want: "https://host"},
		{in: "http://host:443/", want: "http://host:443"},
		{in: "https://[::1]:8443/", want: "https://[::1]:8443"},
		{in: "", wantErr: true},
		{in: "/relative/path", wantErr: true},
		{in: "host:1234", wantErr: true},
		{in: "mailto:someone@example.com", wantErr: true},
		{in: "https://host/%zz", want: "https://host"},
		{in: "https://host:1234/app/50%off", want: "https://host:1234"},
		{in: "https://host:1234/app#frag%", want: "https://host:1234"},
		{in: "https://host?q=%", want: "https://host"},
		{in: "https:///path", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Origin(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidService)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestServiceParam(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     string
		wantErr  bool
	}{
		{name: "encoded", rawQuery: "service=https%3A%2F%2Fhost%3A1234%2Fpath%2520here", want: "https://host:1234/path%20here"},
		{name: "not first", rawQuery: "renew=true&service=https%3A%2F%2Fapp.example.com", want: "https://app.example.com"},
		{name: "first wins", rawQuery: "service=a&service=b", want: "a"},
		{name: "plus is kept", rawQuery: "service=a+b", want: "a+b"},
		{name: "missing", rawQuery: "renew=true", wantErr: true},
		{name: "empty query", rawQuery: "", wantErr: true},
		{name: "bad escape", rawQuery: "service=x%zz", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ServiceParam(tc.rawQuery)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidService)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBrandingFor(t *testing.T) {
	b, err := BrandingFor("service=https%3A%2F%2Fhost%3A1234%2Fpath%2520here")
	require.NoError(t, err)
	assert.Equal(t, "https://host:1234", b.Origin)
	assert.Equal(t, "https://host:1234/scim/v2/TenantImage/jpegPhoto/appBranding", b.Image)
	assert.Equal(t, "https://host:1234/scim/v2/TenantImage/jpegPhoto/primary", b.Fallback)
	assert.Equal(t, "https://host:1234/ics/passwordReset.html", b.PasswordReset)

	b, err = BrandingFor("service=https%3A%2F%2Ftenant.example.com%2Fapp")
	require.NoError(t, err)
	assert.Equal(t, "https://tenant.example.com", b.Origin)

	b, err = BrandingFor("service=https%3A%2F%2Fhost%3A1234%2Fapp%2F50%25off")
	require.NoError(t, err)
	assert.Equal(t, "https://host:1234/ics/passwordReset.html", b.PasswordReset)

	_, err = BrandingFor("renew=true")
	assert.ErrorIs(t, err, ErrInvalidService)
}
