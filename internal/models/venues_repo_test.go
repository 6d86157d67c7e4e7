package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVenues_CachesUntilForceRefresh(t *testing.T) {
	cr := newTestRepo(t)
	writeFixture(t, cr, VenuesFile, venuesFixture)

	venues, err := cr.LoadVenues(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Warehouse", venues[0].Name)

	writeFixture(t, cr, VenuesFile, `ID,Name,Address,Type,Bio,Tags,Residents,PhotoURLs
42,Renamed,1 Dock Rd,club,,,,
`)

	cached, err := cr.LoadVenues(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "Warehouse", cached[0].Name)

	fresh, err := cr.LoadVenues(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Renamed", fresh[0].Name)
}

func TestGetVenueByID(t *testing.T) {
	cr := newTestRepo(t)
	writeFixture(t, cr, VenuesFile, venuesFixture)

	venue, err := cr.GetVenueByID(context.Background(), "43")
	require.NoError(t, err)
	require.NotNil(t, venue)
	assert.Equal(t, "Loft", venue.Name)

	missing, err := cr.GetVenueByID(context.Background(), "99")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLoadHosts_ReadsEveryCall(t *testing.T) {
	cr := newTestRepo(t)
	writeFixture(t, cr, HostsFile, hostsFixture)

	hosts, err := cr.LoadHosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 1)

	writeFixture(t, cr, HostsFile, hostsFixture+`9,DJ Echo,,http://img/h9.jpg,house
`)

	hosts, err = cr.LoadHosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, "DJ Echo", hosts[1].Name)
}

func TestLoadTags(t *testing.T) {
	cr := newTestRepo(t)
	writeFixture(t, cr, TagsFile, `ID,Name
1,techno
2,house
`)

	tags, err := cr.LoadTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "techno", tags[0].Name)

	cr2 := newTestRepo(t)
	tags, err = cr2.LoadTags(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLoadVenues_MissingFileReturnsEmpty(t *testing.T) {
	cr := newTestRepo(t)

	venues, err := cr.LoadVenues(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, venues)
}
