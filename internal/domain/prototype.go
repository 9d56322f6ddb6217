package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Connection struct {
	To       primitive.ObjectID `bson:"to" json:"to"`
	Relation string             `bson:"relation" json:"relation"`
}

type PrototypeNode struct {
	FeatureID   primitive.ObjectID `bson:"feature_id" json:"feature_id"`
	Connections []Connection       `bson:"connections" json:"connections"`
}

type Prototype struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID primitive.ObjectID `bson:"template_id" json:"template_id"`
	Nodes      []PrototypeNode    `bson:"prototype" json:"prototype"`
}

// PrototypeView is a prototype with its template and every feature named by
// a node or a connection looked up.
type PrototypeView struct {
	Prototype    `bson:",inline"`
	TemplateDocs []Template `bson:"template_docs"`
	FeatureDocs  []Feature  `bson:"feature_docs"`
}

func (v PrototypeView) ResolvedTemplate() *Template {
	for i := range v.TemplateDocs {
		if v.TemplateDocs[i].ID == v.TemplateID {
			return &v.TemplateDocs[i]
		}
	}
	return nil
}

// ResolvedFeature returns the looked up feature for id, or nil when the
// reference dangles.
func (v PrototypeView) ResolvedFeature(id primitive.ObjectID) *Feature {
	for i := range v.FeatureDocs {
		if v.FeatureDocs[i].ID == id {
			return &v.FeatureDocs[i]
		}
	}
	return nil
}

func (v PrototypeView) ReferenceCount() int {
	count := 1
	for _, node := range v.Nodes {
		count += 1 + len(node.Connections)
	}
	return count
}

func (v PrototypeView) ResolvedCount() int {
	count := 0
	if v.ResolvedTemplate() != nil {
		count++
	}
	for _, node := range v.Nodes {
		if v.ResolvedFeature(node.FeatureID) != nil {
			count++
		}
		for _, conn := range node.Connections {
			if v.ResolvedFeature(conn.To) != nil {
				count++
			}
		}
	}
	return count
}
