package model

// Location is an OpenAQ monitoring site.
type Location struct {
	LocationID int      `gorm:"column:location_id;primaryKey"`
	Name       string   `gorm:"column:name"`
	Locality   *string  `gorm:"column:locality"`
	Country    string   `gorm:"column:country_code"`
	Latitude   *float64 `gorm:"column:latitude"`
	Longitude  *float64 `gorm:"column:longitude"`
}

func (Location) TableName() string {
	return "locations"
}
