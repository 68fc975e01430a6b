package models

// Property is a listing. CostPerNight is stored in minor currency units (cents).
type Property struct {
	ID                int64   `json:"id"`
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      int64   `json:"cost_per_night"`
	ParkingSpaces     int     `json:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	Country           string  `json:"country"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Active            bool    `json:"active"`
	AverageRating     float64 `json:"average_rating,omitempty"` // only set by search
}

// NewProperty holds the attributes of a listing before the store assigns an id.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"gte=0"`
	Country           string `json:"country" validate:"required"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province" validate:"required"`
	PostCode          string `json:"post_code" validate:"required"`
}

// PropertyFilter narrows a property search. Zero values mean "no filter".
// Prices are in major currency units and only apply when both are set.
type PropertyFilter struct {
	City                 string  `json:"city"`
	OwnerID              int64   `json:"owner_id" validate:"gte=0"`
	MinimumPricePerNight float64 `json:"minimum_price_per_night" validate:"gte=0"`
	MaximumPricePerNight float64 `json:"maximum_price_per_night" validate:"gte=0"`
	MinimumRating        float64 `json:"minimum_rating" validate:"gte=0,lte=5"`
}
