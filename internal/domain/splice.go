package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// spliceFeatures lays the looked up documents out in reference order. A
// repeated id yields the feature again and an id with no document is skipped.
func spliceFeatures(ids []primitive.ObjectID, docs []Feature) []Feature {
	byID := make(map[primitive.ObjectID]Feature, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	features := make([]Feature, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			features = append(features, doc)
		}
	}
	return features
}
