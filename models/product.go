package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the catalog document. A copy of it is embedded into cart items
// at add-time, so later catalog edits never alter an existing cart line.
type Product struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Cost     float64            `json:"cost" bson:"cost"`
	Category string             `json:"category" bson:"category"`
	Image    string             `json:"image" bson:"image"`
}
