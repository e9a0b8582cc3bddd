package csvsource

// Config points the source at the two CSV tables.
type Config struct {
	TrainsPath    string `json:"trains_path"`
	PlatformsPath string `json:"platforms_path"`
}

// SetDefaults applies the conventional file names.
func (c *Config) SetDefaults() {
	if c.TrainsPath == "" {
		c.TrainsPath = "trains.csv"
	}
	if c.PlatformsPath == "" {
		c.PlatformsPath = "platform_dataset.csv"
	}
}
