package detections

import (
	"context"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DetectionMongoRepository struct {
	Collection *mongo.Collection
}

func NewDetectionMongoRepository(db *mongo.Client, dbName string) contracts.DetectionRepository {
	return &DetectionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSymptomResponses),
	}
}

func (r *DetectionMongoRepository) Insert(ctx context.Context, record *models.DetectionRecord) (string, error) {
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID := result.InsertedID.(primitive.ObjectID).Hex()
	record.ID = insertedID
	return insertedID, nil
}

func (r *DetectionMongoRepository) FindBySubjectID(ctx context.Context, subjectID string) ([]models.DetectionRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"subjectId": subjectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.DetectionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return records, nil
}

// DeleteByID filters on both the record ID and the owning subject so one
// subject can never delete another subject's record.
func (r *DetectionMongoRepository) DeleteByID(ctx context.Context, subjectID, recordID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"_id":       objectID,
		"subjectId": subjectID,
	}
	result, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *DetectionMongoRepository) DeleteBySubjectID(ctx context.Context, subjectID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"subjectId": subjectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
