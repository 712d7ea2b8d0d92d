package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usedtech_backend/models"
)

func fixtureProducts() []models.Product {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sub := func(name string) *models.Subcategory {
		return &models.Subcategory{Name: name}
	}
	return []models.Product{
		{
			ID: "p1", Name: "Arduino Uno R3", Description: "Classic 8-bit development board",
			Price: 20, Condition: "new", Views: 120, AverageRating: 4.5,
			Category: models.Category{Name: "Microcontrollers"}, Subcategory: sub("Arduino Boards"),
			Tags: []string{"arduino", "atmega328"}, CreatedAt: base,
		},
		{
			ID: "p2", Name: "ESP32 DevKit", Description: "WiFi and BLE module",
			Price: 8, Condition: "good", Views: 300, AverageRating: 4.8,
			Category: models.Category{Name: "Microcontrollers"}, Subcategory: sub("ESP Modules"),
			Tags: []string{"esp32", "wifi"}, CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "p3", Name: "NEMA 17 Stepper", Description: "Stepper motor for 3D printers",
			Price: 15, Condition: "fair", Views: 45, AverageRating: 3.9,
			Category: models.Category{Name: "Motors & Drivers"}, Subcategory: sub("Stepper Motors"),
			Tags: []string{"stepper", "nema17"}, CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "p4", Name: "DHT22 Sensor", Description: "Temperature and humidity sensor",
			Price: 8, Condition: "like-new", Views: 210, AverageRating: 4.2,
			Category: models.Category{Name: "Sensors"}, Subcategory: sub("Temperature Sensors"),
			Tags: []string{"dht22", "temperature"}, CreatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: "p5", Name: "arduino nano clone", Description: "Compact board, compatible firmware",
			Price: 6, Condition: "good", Views: 90, AverageRating: 4.0,
			Category: models.Category{Name: "Microcontrollers"}, Subcategory: sub("Arduino Boards"),
			Tags: []string{"nano"}, CreatedAt: base.Add(96 * time.Hour),
		},
	}
}

func TestApplyConjunctiveFilters(t *testing.T) {
	products := fixtureProducts()
	opts := Options{
		Category:   "Microcontrollers",
		Condition:  "good",
		PriceRange: &PriceRange{Min: 0, Max: 10},
	}

	result := Apply(products, opts)

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Equal(t, "Microcontrollers", p.Category.Name)
		assert.Equal(t, "good", p.Condition)
		assert.LessOrEqual(t, p.Price, 10.0)
	}

	// Every result must come from the input
	ids := map[string]bool{}
	for _, p := range products {
		ids[p.ID] = true
	}
	for _, p := range result {
		assert.True(t, ids[p.ID])
	}
}

func TestApplyPriceRangeInclusive(t *testing.T) {
	products := fixtureProducts()

	result := Apply(products, Options{PriceRange: &PriceRange{Min: 8, Max: 20}})

	var got []string
	for _, p := range result {
		got = append(got, p.ID)
	}
	// p5 (price 6) is out; boundary prices 8 and 20 are in
	assert.NotContains(t, got, "p5")
	assert.Contains(t, got, "p1")
	assert.Contains(t, got, "p2")
	assert.Contains(t, got, "p4")
}

func TestApplySubcategoryFilter(t *testing.T) {
	result := Apply(fixtureProducts(), Options{Subcategory: "Arduino Boards"})

	require.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, "Arduino Boards", p.Subcategory.Name)
	}
}

func TestApplySearchText(t *testing.T) {
	products := fixtureProducts()

	// Case-insensitive name match
	result := Apply(products, Options{SearchText: "arduino"})
	var names []string
	for _, p := range result {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Arduino Uno R3")
	assert.Contains(t, names, "arduino nano clone")

	// Description match
	result = Apply(products, Options{SearchText: "3d printers"})
	require.Len(t, result, 1)
	assert.Equal(t, "p3", result[0].ID)

	// Tag match
	result = Apply(products, Options{SearchText: "wifi"})
	require.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)

	// No match
	assert.Empty(t, Apply(products, Options{SearchText: "oscilloscope"}))
}

func TestApplySortOrders(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		sortBy string
		ok     func(a, b models.Product) bool
	}{
		{SortPriceLow, func(a, b models.Product) bool { return a.Price <= b.Price }},
		{SortPriceHigh, func(a, b models.Product) bool { return a.Price >= b.Price }},
		{SortRating, func(a, b models.Product) bool { return a.AverageRating >= b.AverageRating }},
		{SortNewest, func(a, b models.Product) bool { return !a.CreatedAt.Before(b.CreatedAt) }},
		{SortPopular, func(a, b models.Product) bool { return a.Views >= b.Views }},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			result := Apply(products, Options{SortBy: tt.sortBy})
			require.Len(t, result, len(products))
			for i := 1; i < len(result); i++ {
				assert.True(t, tt.ok(result[i-1], result[i]),
					"adjacent pair %q, %q violates %s order", result[i-1].Name, result[i].Name, tt.sortBy)
			}
		})
	}
}

func TestApplyDefaultSortIsNameAscendingCaseFolded(t *testing.T) {
	result := Apply(fixtureProducts(), Options{})

	require.Len(t, result, 5)
	// "arduino nano clone" sorts next to "Arduino Uno R3" despite the case
	assert.Equal(t, "p5", result[0].ID)
	assert.Equal(t, "p1", result[1].ID)
}

func TestApplyStableOnTies(t *testing.T) {
	products := fixtureProducts()

	result := Apply(products, Options{SortBy: SortPriceLow})

	// p2 and p4 share price 8; p2 precedes p4 in the input and must stay first
	var tied []string
	for _, p := range result {
		if p.Price == 8 {
			tied = append(tied, p.ID)
		}
	}
	assert.Equal(t, []string{"p2", "p4"}, tied)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	var inputOrder []string
	for _, p := range products {
		inputOrder = append(inputOrder, p.ID)
	}

	Apply(products, Options{SortBy: SortPriceHigh, Condition: "good"})

	var after []string
	for _, p := range products {
		after = append(after, p.ID)
	}
	assert.Equal(t, inputOrder, after)
}

func TestApplyIdempotent(t *testing.T) {
	opts := Options{Category: "Microcontrollers", SortBy: SortPriceLow}

	once := Apply(fixtureProducts(), opts)
	twice := Apply(once, opts)

	assert.Equal(t, once, twice)
}

func TestApplyPriceFilterScenario(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "Arduino Uno", Price: 20, Condition: "new"},
		{ID: "b", Name: "ESP32", Price: 8, Condition: "good"},
	}

	result := Apply(products, Options{
		PriceRange: &PriceRange{Min: 0, Max: 10},
		SortBy:     SortPriceLow,
	})

	require.Len(t, result, 1)
	assert.Equal(t, "ESP32", result[0].Name)
	assert.Equal(t, 8.0, result[0].Price)
}
