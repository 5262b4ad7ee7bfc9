// Package view holds stateless display projections shared by the screens.
package view

import (
	"fmt"
	"strings"

	"placehound/shared/go/models"
)

// Stars maps a rating onto five units of 1 (full), 0.5 (half), or 0 (empty).
// A position gets a half unit when it sits less than a whole unit above the
// rating.
func Stars(rating float64) []float64 {
	stars := make([]float64, 0, 5)
	for i := 1; i <= 5; i++ {
		switch {
		case float64(i) <= rating:
			stars = append(stars, 1)
		case float64(i)-rating < 1:
			stars = append(stars, 0.5)
		default:
			stars = append(stars, 0)
		}
	}
	return stars
}

// CategoryAll is the synthetic catch-all category. It never reaches the
// server; fetches expand it to every concrete category.
const CategoryAll = "All"

// Categories returns the fixed catalog of place categories, "All" first.
func Categories() []string {
	return []string{
		CategoryAll, "attraction", "arts and culture",
		"open spaces", "family friendly", "venue for events",
		"food - drink producer", "nature - environment", "history - heritage",
		"active lifestyles - sports", "shopping - retail",
	}
}

// ProfilePhotoName maps a gender to its stock avatar filename.
func ProfilePhotoName(gender models.Gender) string {
	switch gender {
	case models.GenderFemale:
		return "female.png"
	case models.GenderMale:
		return "male.png"
	default:
		return "avatar_placeholder.png"
	}
}

// Detail is one labelled value in the place details projection.
type Detail struct {
	Label string
	Value string
}

// PlaceDetails flattens a place into the ordered label/value pairs the
// details screen shows, joining array fields with a comma separator.
func PlaceDetails(p models.Place) []Detail {
	return []Detail{
		{"Summary", p.Summary},
		{"Rating", fmt.Sprintf("%g", p.Rating)},
		{"Location", fmt.Sprintf("Latitude: %s, Longitude: %s", p.Location.Latitude, p.Location.Longitude)},
		{"Address", strings.Join([]string{p.Address.Line1, p.Address.Line2, p.Address.Line3, p.Address.Postcode}, ", ")},
		{"Categories", strings.Join(p.Categories, ", ")},
		{"Type", strings.Join(p.Type, ", ")},
		{"Tags", strings.Join(p.Tags, ", ")},
		{"Website", strings.Join(p.Website, ", ")},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"UPRN", fmt.Sprintf("%d", p.UPRN)},
		{"Venue Description", p.VenueDescription},
		{"All Weather", p.AllWeather},
		{"Opening Times", p.OpeningTimes},
		{"Accessibility", p.Accessibility},
		{"Pet Friendly", p.PetFriendly},
		{"Parking", p.Parking},
		{"Visit Time", p.VisitTime},
		{"Google Map Link", p.GoogleMapLink},
		{"Nearest Bus Stop", fmt.Sprintf("%s (%s walk)", p.NearestBusStop, p.WalkTimeBus)},
		{"Nearest Train Station", fmt.Sprintf("%s (%s walk)", p.NearestTrainStation, p.WalkTimeTrain)},
		{"Directions", p.Directions},
		{"Nearest Bus Service", p.NearestBusService},
		{"Cost Details", p.CostDetails},
	}
}
