package constvars

const (
	MongoCollectionSymptomQuestions = "symptomquestions"
	MongoCollectionSymptomResponses = "symptomresponses"
)
