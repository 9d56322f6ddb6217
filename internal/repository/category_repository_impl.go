package repository

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCategoryRepositoryImpl struct {
	*MongoDBRepository[domain.Category]
}

func CreateNewCategoryRepository(db *mongo.Database, c Collections) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{CreateNewMongoDBRepository[domain.Category](db, c.Categories)}
}
