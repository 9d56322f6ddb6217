package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func matchStage(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

func templateViewPipeline(filter bson.D, c Collections) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(filter),
		lookupStage(c.Categories, "category", "category_docs"),
		lookupStage(c.Features, "features", "feature_docs"),
	}
}

func projectViewPipeline(filter bson.D, c Collections) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(filter),
		lookupStage(c.Templates, "template", "template_docs"),
		lookupStage(c.Features, "features", "feature_docs"),
	}
}

// prototypeViewPipeline keeps the newest prototype matching filter and looks
// up every feature a node or a connection points at.
func prototypeViewPipeline(filter bson.D, c Collections) mongo.Pipeline {
	emptyArray := bson.A{}
	nodeFeatures := bson.D{{Key: "$ifNull", Value: bson.A{"$prototype.feature_id", emptyArray}}}
	connectionTargets := bson.D{{Key: "$reduce", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$prototype.connections.to", emptyArray}}}},
		{Key: "initialValue", Value: emptyArray},
		{Key: "in", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
			"$$value",
			bson.D{{Key: "$ifNull", Value: bson.A{"$$this", emptyArray}}},
		}}}},
	}}}

	featureLookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: c.Features},
		{Key: "let", Value: bson.D{{Key: "ids", Value: bson.D{{Key: "$concatArrays", Value: bson.A{nodeFeatures, connectionTargets}}}}}},
		{Key: "pipeline", Value: mongo.Pipeline{
			matchStage(bson.D{{Key: "$expr", Value: bson.D{{Key: "$in", Value: bson.A{"$_id", "$$ids"}}}}}),
		}},
		{Key: "as", Value: "feature_docs"},
	}}}

	return mongo.Pipeline{
		matchStage(filter),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 1}},
		lookupStage(c.Templates, "template_id", "template_docs"),
		featureLookup,
	}
}
