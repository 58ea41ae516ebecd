package entity

import "time"

// EnvironmentalReading one greenhouse sensor sample
type EnvironmentalReading struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	PlantName    string    `json:"plant_name" gorm:"size:200;not null;index"`
	Category     string    `json:"category" gorm:"size:50;not null"`
	Temperature  float64   `json:"temperature" gorm:"not null"`
	Humidity     float64   `json:"humidity" gorm:"not null"`
	LightLevel   float64   `json:"light_level" gorm:"not null"`
	SoilMoisture float64   `json:"soil_moisture" gorm:"not null"`
	RecordedAt   time.Time `json:"recorded_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

func (EnvironmentalReading) TableName() string {
	return "ops_environmental_readings"
}

// Reading categories
const (
	ReadingCategoryGreenhouse = "greenhouse"
	ReadingCategoryNursery    = "nursery"
	ReadingCategoryField      = "field"
	ReadingCategoryStorage    = "storage"
)

// IsReadingCategory reports whether c is a known category.
func IsReadingCategory(c string) bool {
	switch c {
	case ReadingCategoryGreenhouse, ReadingCategoryNursery, ReadingCategoryField, ReadingCategoryStorage:
		return true
	}
	return false
}

// Sensor value bounds. Writes outside these ranges are rejected.
const (
	TemperatureMin  = -10.0
	TemperatureMax  = 60.0
	HumidityMin     = 0.0
	HumidityMax     = 100.0
	LightLevelMin   = 0.0
	LightLevelMax   = 100000.0
	SoilMoistureMin = 0.0
	SoilMoistureMax = 100.0
)
