package config

// NetworkFile represents the structure of a network YAML file.
type NetworkFile struct {
	Version     string          `yaml:"version"`
	Pricing     PricingDTO      `yaml:"pricing"`
	RoundTrip   RoundTripDTO    `yaml:"roundTrip"`
	Connections []ConnectionDTO `yaml:"connections"`
}

// PricingDTO overrides fare policy constants. Omitted fields keep their defaults.
type PricingDTO struct {
	BaseRate           *float64 `yaml:"baseRate"`
	PeakMultiplier     *float64 `yaml:"peakMultiplier"`
	ScarcityMultiplier *float64 `yaml:"scarcityMultiplier"`
	ScarcityThreshold  *int     `yaml:"scarcityThreshold"`
}

// RoundTripDTO configures the round-trip planner.
type RoundTripDTO struct {
	MaxStops *int `yaml:"maxStops"`
}

// ConnectionDTO represents one scheduled connection.
type ConnectionDTO struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
	Seats    int     `yaml:"seats"`
	Peak     bool    `yaml:"peak"`
	Discount int     `yaml:"discount"`
}
