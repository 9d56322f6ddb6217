package repository

import (
	"context"
	"testing"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const categoryNS = "builder.categories"

func categoryDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: "Reusable interface components"},
		{Key: "image", Value: bson.D{{Key: "name", Value: "a.png"}, {Key: "src", Value: "/media/categories/a.png"}}},
	}
}

func newCategoryRepository(mt *mtest.T) *MongoDBRepository[domain.Category] {
	return CreateNewMongoDBRepository[domain.Category](mt.DB, mt.Coll.Name())
}

func TestMongoDBRepositoryFindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoryNS, mtest.FirstBatch,
			categoryDoc(first, "UI Kits"),
			categoryDoc(second, "Dashboards"),
		))

		data, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, data, 2)
		assert.Equal(t, first, data[0].ID)
		assert.Equal(t, "Dashboards", data[1].Name)
		assert.Equal(t, "/media/categories/a.png", data[1].Image.Src)
	})

	mt.Run("empty collection yields an empty slice", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoryNS, mtest.FirstBatch))

		data, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, data)
		assert.Empty(t, data)
	})

	mt.Run("driver failure is a store error", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.FindAll(context.Background())
		assert.ErrorIs(t, err, errs.ErrStore)
	})
}

func TestMongoDBRepositoryFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoryNS, mtest.FirstBatch, categoryDoc(id, "UI Kits")))

		data, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, id, data.ID)
		assert.Equal(t, "UI Kits", data.Name)
	})

	mt.Run("absent is not an error", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoryNS, mtest.FirstBatch))

		data, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)

		data, err := repo.FindByID(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, errs.ErrInvalidID)
		assert.Nil(t, data)
	})

	mt.Run("document with the wrong shape", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoryNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: 42}},
		))

		_, err := repo.FindByID(context.Background(), id.Hex())
		assert.ErrorIs(t, err, errs.ErrDecode)
	})
}

func TestMongoDBRepositoryInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the generated id", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(context.Background(), domain.Category{Name: "UI Kits"})
		require.NoError(t, err)
		assert.False(t, id.IsZero())
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Insert(context.Background(), domain.Category{Name: "UI Kits"})
		assert.ErrorIs(t, err, errs.ErrStore)
	})
}

func TestMongoDBRepositoryUpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the updated document", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: categoryDoc(id, "Renamed")},
		})

		data, err := repo.UpdateByID(context.Background(), id.Hex(), domain.Category{Name: "Renamed"})
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "Renamed", data.Name)
		assert.Equal(t, "a.png", data.Image.Name)
	})

	mt.Run("absent is not an error", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		data, err := repo.UpdateByID(context.Background(), primitive.NewObjectID().Hex(), domain.Category{Name: "Renamed"})
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)

		_, err := repo.UpdateByID(context.Background(), "123", domain.Category{Name: "Renamed"})
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})
}

func TestMongoDBRepositoryDeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the removed document", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: categoryDoc(id, "UI Kits")},
		})

		data, err := repo.DeleteByID(context.Background(), id.Hex())
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, id, data.ID)
	})

	mt.Run("absent is not an error", func(mt *mtest.T) {
		repo := newCategoryRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		data, err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(t, err)
		assert.Nil(t, data)
	})
}

func TestSetFields(t *testing.T) {
	price := 12.5
	fields, err := setFields(domain.Feature{
		ID:    primitive.NewObjectID(),
		Name:  "Chat",
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.D{
		{Key: "name", Value: "Chat"},
		{Key: "price", Value: 12.5},
	}, fields)
}
