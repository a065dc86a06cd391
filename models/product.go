package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog listing. Manufacturer is the owning seller's id and
// Rating is the mean of the referenced reviews' ratings.
type Product struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ProductCode     string               `bson:"productCode" json:"productCode"`
	Title           string               `bson:"title" json:"title"`
	ImagePath       string               `bson:"imagePath" json:"imagePath"`
	ImageThumbnail1 string               `bson:"imagethumbnail1" json:"imagethumbnail1"`
	ImageThumbnail2 string               `bson:"imagethumbnail2" json:"imagethumbnail2"`
	ImageThumbnail3 string               `bson:"imagethumbnail3" json:"imagethumbnail3"`
	Description     string               `bson:"description" json:"description"`
	Features1       string               `bson:"features1" json:"features1"`
	Features2       string               `bson:"features2" json:"features2"`
	Features3       string               `bson:"features3" json:"features3"`
	Features4       string               `bson:"features4" json:"features4"`
	MRP             float64              `bson:"mrp" json:"mrp"`
	Price           float64              `bson:"price" json:"price"`
	Reviewed        int                  `bson:"reviewed" json:"reviewed"`
	Sold            int                  `bson:"sold" json:"sold"`
	Stock           int                  `bson:"stock" json:"stock"`
	Brand           string               `bson:"brand" json:"brand"`
	Manufacturer    primitive.ObjectID   `bson:"manufacturer" json:"manufacturer"`
	Available       bool                 `bson:"available" json:"available"`
	Category        string               `bson:"category" json:"category"`
	Rating          float64              `bson:"rating" json:"rating"`
	Reviews         []primitive.ObjectID `bson:"reviews" json:"reviews"`
}
