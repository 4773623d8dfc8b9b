package worker

import "go.mongodb.org/mongo-driver/bson/primitive"

// Worker is an identity record in the roster. Owned by the store and
// read-only here; attendance entries copy it into per-day snapshots.
type Worker struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"NAME" json:"NAME"`
	Email string             `bson:"EMAIL" json:"EMAIL"`
	Phone string             `bson:"PHONE,omitempty" json:"PHONE,omitempty"`
}
