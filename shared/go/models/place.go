package models

// Location holds the latitude/longitude pair the backend stores as strings.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Address is the structured postal address of a place.
type Address struct {
	Line1    string `json:"address_1"`
	Line2    string `json:"address_2"`
	Line3    string `json:"address_3"`
	Postcode string `json:"postcode"`
}

// Place represents an entry in the places directory. PlaceID is the stable
// identifier reviews reference; the Mongo _id is carried only so deletes and
// re-fetches can round-trip it.
type Place struct {
	ID                  string   `json:"_id,omitempty"`
	PlaceID             int64    `json:"place_id"`
	SiteName            string   `json:"site_name"`
	Summary             string   `json:"summary"`
	Description         string   `json:"description"`
	LocationID          int64    `json:"location_id"`
	Location            Location `json:"location"`
	Type                []string `json:"type"`
	Tags                []string `json:"tags"`
	Address             Address  `json:"address"`
	Website             []string `json:"website"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Categories          []string `json:"categories"`
	VenueDescription    string   `json:"venue_description"`
	AllWeather          string   `json:"all_weather"`
	OpeningTimes        string   `json:"opening_times"`
	Accessibility       string   `json:"accessibility"`
	PetFriendly         string   `json:"pet_friendly"`
	Parking             string   `json:"parking"`
	VisitTime           string   `json:"visit_time"`
	UPRN                int64    `json:"uprn"`
	GoogleMapLink       string   `json:"google_map_link"`
	WalkTimeBus         string   `json:"walk_time_bus"`
	NearestBusStop      string   `json:"nearest_bus_stop"`
	WalkTimeTrain       string   `json:"walk_time_train"`
	NearestTrainStation string   `json:"nearest_train_station"`
	Directions          string   `json:"directions"`
	NearestBusService   string   `json:"nearest_bus_service"`
	Image               string   `json:"image"`
	CostFree            *bool    `json:"cost_free"`
	CostDetails         string   `json:"cost_details"`
	Rating              float64  `json:"rating"`

	// ShowDetails is view state, never sent to or read from the server.
	ShowDetails bool `json:"-"`
}
