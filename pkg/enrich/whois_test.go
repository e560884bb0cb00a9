package enrich

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const whoisFixture = `Domain Name: FRAUD-OFFERS.COM
Registry Domain ID: 2336799_DOMAIN_COM-VRSN
Registrar WHOIS Server: whois.registrar.example
Registrar URL: http://www.registrar.example
Updated Date: 2026-07-12T10:20:00Z
Creation Date: 2026-07-01T00:00:00Z
Registry Expiry Date: 2027-07-01T00:00:00Z
Registrar: Fly-By-Night Registrations Inc
Registrar IANA ID: 9999
Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
Name Server: NS1.PARKING.EXAMPLE
Name Server: NS2.PARKING.EXAMPLE
DNSSEC: unsigned
`

func TestParseWhois(t *testing.T) {
	now := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	info, err := ParseWhois(whoisFixture, now)
	require.NoError(t, err)

	assert.Equal(t, "Fly-By-Night Registrations Inc", info.Registrar)
	require.NotNil(t, info.CreatedAt)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), info.CreatedAt.UTC())
	require.NotNil(t, info.ExpiresAt)
	require.NotNil(t, info.AgeDays)
	assert.Equal(t, 30, *info.AgeDays)
}

func TestParseWhoisFutureCreationClampsAge(t *testing.T) {
	// Some registries return timestamps ahead of our clock; age floors at
	// zero instead of going negative and erasing the young-domain signal.
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	info, err := ParseWhois(whoisFixture, now)
	require.NoError(t, err)
	require.NotNil(t, info.AgeDays)
	assert.Equal(t, 0, *info.AgeDays)
}

func TestParseWhoisNotFound(t *testing.T) {
	_, err := ParseWhois("No match for domain \"NOBODY-REGISTERED-THIS.COM\".\n", time.Now())
	assert.Error(t, err)
}

func TestDomainInfoMap(t *testing.T) {
	created := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	expires := time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC)
	age := 30

	full := &DomainInfo{
		Registrar: "Fly-By-Night Registrations Inc",
		CreatedAt: &created,
		ExpiresAt: &expires,
		AgeDays:   &age,
	}
	m := full.Map()
	assert.Equal(t, "Fly-By-Night Registrations Inc", m["registrar"])
	assert.Equal(t, "2026-07-01T00:00:00Z", m["created"])
	assert.Equal(t, "2027-07-01T00:00:00Z", m["expires"])
	assert.Equal(t, 30, m["age_days"])

	assert.Empty(t, (&DomainInfo{}).Map())
}

func TestWhoisResolverRejectsEmptyDomain(t *testing.T) {
	r := NewWhoisResolver(time.Second, slog.Default())
	_, err := r.Lookup(t.Context(), "")
	assert.Error(t, err)
}
