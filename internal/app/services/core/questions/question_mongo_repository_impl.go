package questions

import (
	"context"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionMongoRepository(db *mongo.Client, dbName string) contracts.QuestionRepository {
	return &QuestionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSymptomQuestions),
	}
}

func (r *QuestionMongoRepository) FindAll(ctx context.Context) ([]models.SymptomQuestion, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "questionNumber", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var questions []models.SymptomQuestion
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return questions, nil
}

func (r *QuestionMongoRepository) FindByNumber(ctx context.Context, questionNumber int) (*models.SymptomQuestion, error) {
	var question models.SymptomQuestion
	err := r.Collection.FindOne(ctx, bson.M{"questionNumber": questionNumber}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &question, nil
}

func (r *QuestionMongoRepository) ReplaceAll(ctx context.Context, questions []models.SymptomQuestion) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	documents := make([]interface{}, 0, len(questions))
	for _, question := range questions {
		documents = append(documents, question)
	}
	_, err = r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
