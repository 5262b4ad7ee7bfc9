package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placehound/shared/go/models"
)

func TestStars(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   []float64
	}{
		{"zero", 0, []float64{0, 0, 0, 0, 0}},
		{"full", 5, []float64{1, 1, 1, 1, 1}},
		{"half", 3.5, []float64{1, 1, 1, 0.5, 0}},
		{"whole", 4, []float64{1, 1, 1, 1, 0}},
		{"fraction rounds to half", 2.2, []float64{1, 1, 0.5, 0, 0}},
		{"above range clamps to full", 7, []float64{1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stars(tt.rating))
		})
	}
}

func TestStarsShape(t *testing.T) {
	for rating := 0.0; rating <= 5.0; rating += 0.25 {
		stars := Stars(rating)
		require.Len(t, stars, 5)
		for i, s := range stars {
			assert.Contains(t, []float64{0, 0.5, 1}, s, "rating %g position %d", rating, i)
			if i > 0 {
				assert.LessOrEqual(t, s, stars[i-1], "rating %g position %d", rating, i)
			}
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, CategoryAll, cats[0])

	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
	assert.Contains(t, cats, "food - drink producer")
	assert.Contains(t, cats, "shopping - retail")
}

func TestProfilePhotoName(t *testing.T) {
	assert.Equal(t, "female.png", ProfilePhotoName(models.GenderFemale))
	assert.Equal(t, "male.png", ProfilePhotoName(models.GenderMale))
	assert.Equal(t, "avatar_placeholder.png", ProfilePhotoName(models.GenderOther))
	assert.Equal(t, "avatar_placeholder.png", ProfilePhotoName(models.Gender("")))
}

func TestPlaceDetails(t *testing.T) {
	place := models.Place{
		SiteName: "Hidden Gardens",
		Summary:  "A quiet walled garden",
		Rating:   4.5,
		Location: models.Location{Latitude: "55.8", Longitude: "-4.3"},
		Address: models.Address{
			Line1:    "25 Albert Drive",
			Line2:    "Pollokshields",
			Line3:    "Glasgow",
			Postcode: "G41 2PE",
		},
		Categories:          []string{"open spaces", "nature - environment"},
		Type:                []string{"garden"},
		Tags:                []string{"quiet", "free"},
		Website:             []string{"https://example.org"},
		Email:               "hello@example.org",
		Phone:               "0141 000 0000",
		UPRN:                906700123456,
		NearestBusStop:      "Albert Drive",
		WalkTimeBus:         "2 min",
		NearestTrainStation: "Pollokshields East",
		WalkTimeTrain:       "5 min",
	}

	details := PlaceDetails(place)
	require.NotEmpty(t, details)

	byLabel := make(map[string]string, len(details))
	for _, d := range details {
		byLabel[d.Label] = d.Value
	}

	assert.Equal(t, "Summary", details[0].Label)
	assert.Equal(t, "A quiet walled garden", byLabel["Summary"])
	assert.Equal(t, "4.5", byLabel["Rating"])
	assert.Equal(t, "Latitude: 55.8, Longitude: -4.3", byLabel["Location"])
	assert.Equal(t, "25 Albert Drive, Pollokshields, Glasgow, G41 2PE", byLabel["Address"])
	assert.Equal(t, "open spaces, nature - environment", byLabel["Categories"])
	assert.Equal(t, "Albert Drive (2 min walk)", byLabel["Nearest Bus Stop"])
	assert.Equal(t, "Pollokshields East (5 min walk)", byLabel["Nearest Train Station"])
}
