package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Seller is a merchant account. Approved gates marketplace visibility and is
// toggled from the admin dashboard; Products holds the ids of every product
// the seller has listed.
type Seller struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username    string               `bson:"username" json:"username"`
	Email       string               `bson:"email" json:"email"`
	Password    string               `bson:"password,omitempty" json:"password,omitempty"`
	CompanyName string               `bson:"companyName" json:"companyName"`
	Address     string               `bson:"address" json:"address"`
	IsSeller    bool                 `bson:"isSeller" json:"isSeller"`
	Approved    bool                 `bson:"approved" json:"approved"`
	Products    []primitive.ObjectID `bson:"products" json:"products"`
}
