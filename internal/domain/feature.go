package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Feature struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name,omitempty" json:"name"`
	Description string             `bson:"description,omitempty" json:"description"`
	FeatureType string             `bson:"feature_type,omitempty" json:"feature_type"`
	Image       *File              `bson:"image,omitempty" json:"image"`
	Wireframes  []FileWithID       `bson:"wireframes,omitempty" json:"wireframes"`
	Price       *float64           `bson:"price,omitempty" json:"price"`
	Repo        string             `bson:"repo,omitempty" json:"repo"`
}
