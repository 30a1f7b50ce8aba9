package models

import "fmt"

type Coordinates struct {
	Latitude  float64 `yaml:"lat" json:"lat"`
	Longitude float64 `yaml:"lon" json:"lon"`
}

func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the coordinate the way mapping providers accept it ("lat,lng").
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

type CrisisCenter struct {
	ID          string
	Name        string // e.g. "Helsingin kriisikeskus"
	Region      string
	Phone       string
	Coordinates Coordinates
	Languages   []string // ISO 639-1 codes
}

// Place is a location a query can resolve to. Coordinates is nil when the
// gazetteer has no position for it, which makes straight-line distance unknown.
type Place struct {
	Name        string
	CenterID    string
	Coordinates *Coordinates
}

// EmergencyContacts are returned with every response regardless of outcome.
type EmergencyContacts struct {
	NationalCrisisLine string `json:"national_crisis_line"`
	EmergencyNumber    string `json:"emergency_number"`
}

var DefaultEmergencyContacts = EmergencyContacts{
	NationalCrisisLine: "09 25250111",
	EmergencyNumber:    "112",
}
