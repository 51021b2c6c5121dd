package ingestion

import (
	"net/url"
	"testing"

	"github.com/poiesic/guidepost/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantsFile = `KINGSTON RESTAURANTS
==================

Business Name: Green Fork
Location: 12 Princess St
Location URL: https://example.com/green-fork
Hours: 11am - 10pm
Local Sourcing: Ontario farms
Veg/Vegan Options: Yes
Green Plate Certification: Gold
Notes: Seasonal menu

Business Name: Harbour Grill
Location: 5 Ontario St
Green Plate Certification: none

Business Name:
Location: 1 Nowhere Rd`

func TestParseCollection_Food(t *testing.T) {
	col := ParseCollection(core.CategoryFood, "restaurants", restaurantsFile)
	assert.Equal(t, core.CategoryFood, col.Category)
	assert.Equal(t, "restaurants", col.Key)
	require.Len(t, col.Records, 2)

	first := col.Records[0].(core.FoodRecord)
	assert.Equal(t, "Green Fork", first.Name)
	assert.Equal(t, "12 Princess St", first.Location)
	assert.Equal(t, "https://example.com/green-fork", first.URL)
	assert.Equal(t, "11am - 10pm", first.Hours)
	assert.Equal(t, "Ontario farms", first.LocalSourcing)
	assert.Equal(t, "Yes", first.VegVegan)
	assert.Equal(t, core.CertificationGold, first.Certification)
	assert.Equal(t, "Seasonal menu", first.Notes)

	second := col.Records[1].(core.FoodRecord)
	assert.Equal(t, "Harbour Grill", second.Name)
	assert.Equal(t, core.CertificationNone, second.Certification)
	assert.Equal(t, MapsURL("Harbour Grill", "5 Ontario St"), second.URL)
}

func TestParseCollection_Shops(t *testing.T) {
	content := `KINGSTON SHOPS
====
Store Name: Green Threads
Location: 200 Princess St
Hours of Operation: 10am - 6pm
Info: Second-hand clothing
Category: Clothing
---
Business Name: Corner Thrift Shop
Hours: 9am - 5pm
Notes: Furniture and books
---
END OF FILE`

	col := ParseCollection(core.CategoryFood, ShopsKey, content)
	require.Len(t, col.Records, 2)

	first := col.Records[0].(core.FoodRecord)
	assert.Equal(t, "Green Threads", first.Name)
	assert.Equal(t, "10am - 6pm", first.Hours)
	assert.Equal(t, "Second-hand clothing", first.Notes)
	assert.Equal(t, "Clothing", first.Category)
	assert.Contains(t, first.URL, "https://www.google.com/maps/search/?api=1&query=")

	second := col.Records[1].(core.FoodRecord)
	assert.Equal(t, "Corner Thrift Shop", second.Name)
	assert.Equal(t, "9am - 5pm", second.Hours)
	assert.Equal(t, "Furniture and books", second.Notes)
	assert.Empty(t, second.URL, "no location means no generated URL")
}

func TestParseCollection_Places(t *testing.T) {
	content := `=== PARKS ===
Place Name: Riverside Park
Location: 1 River Rd
About: Waterfront trails
Hours: Dawn to dusk
Fees: Free
Accessibility: Full access on main paths
Washrooms: Washrooms available in summer
Place Name: Old Fort
Location: 2 Fort Rd
Accessibility: NULL
Washrooms: Not available`

	col := ParseCollection(core.CategoryPlace, "parks", content)
	require.Len(t, col.Records, 2)

	park := col.Records[0].(core.PlaceRecord)
	assert.Equal(t, "Riverside Park", park.Name)
	assert.Equal(t, "Waterfront trails", park.About)
	assert.Equal(t, "Dawn to dusk", park.Hours)
	assert.Equal(t, "Free", park.Fees)
	assert.Equal(t, core.AccessibilityFull, park.Accessibility)
	assert.Equal(t, core.WashroomsAvailable, park.Washrooms)

	fort := col.Records[1].(core.PlaceRecord)
	assert.Equal(t, core.AccessibilityUnknown, fort.Accessibility)
	assert.Equal(t, core.WashroomsNotAvailable, fort.Washrooms)
}

func TestParseCollection_Events(t *testing.T) {
	content := `Harvest Fair | Sep 12, 2026 | Sep 13, 2026 | Fairgrounds | 1 Fair Rd | https://example.com/fair
Jazz Night | Feb 8 | Feb 8 | City Hall
Broken | Feb 8 | Feb 9
no pipes here`

	col := ParseCollection(core.CategoryEvent, "events", content)
	require.Len(t, col.Records, 2)

	fair := col.Records[0].(core.EventRecord)
	assert.Equal(t, "Harvest Fair", fair.Name)
	assert.Equal(t, "Sep 12, 2026", fair.StartDate)
	assert.Equal(t, "Sep 13, 2026", fair.EndDate)
	assert.Equal(t, "Fairgrounds", fair.Venue)
	assert.Equal(t, "1 Fair Rd", fair.Location)
	assert.Equal(t, "https://example.com/fair", fair.URL)

	jazz := col.Records[1].(core.EventRecord)
	assert.Equal(t, "City Hall", jazz.Venue)
	assert.Empty(t, jazz.Location)
	assert.Empty(t, jazz.URL)
}

func TestMapsURL(t *testing.T) {
	assert.Empty(t, MapsURL("Green Fork", ""))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Green%20Fork%2C%2012%20Princess%20St%2C%20Kingston%2C%20ON",
		MapsURL("Green Fork", "12 Princess St"))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=12%20Princess%20St%2C%20Kingston%2C%20ON",
		MapsURL("", "12 Princess St"))

	u, err := url.Parse(MapsURL("A&W Restaurant", "1 King St"))
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("api"))
	assert.Equal(t, "A&W Restaurant, 1 King St, Kingston, ON", u.Query().Get("query"))
}
