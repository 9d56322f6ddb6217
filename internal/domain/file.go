package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type File struct {
	Name string `bson:"name" json:"name"`
	Src  string `bson:"src" json:"src"`
}

// FileWithID is an uploaded file that can be addressed on its own, such as a
// feature wireframe.
type FileWithID struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
	Src  string             `bson:"src" json:"src"`
}

func NewFileWithID(file File) FileWithID {
	return FileWithID{ID: primitive.NewObjectID(), Name: file.Name, Src: file.Src}
}
