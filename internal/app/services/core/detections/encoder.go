package detections

import (
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
)

// skinLupusScoreTable maps the (discoid, subacute, acute) cutaneous answers
// onto the single Cutaneous_lupus model input. The table is not a sum: it
// encodes a clinical precedence, and the (0,1,1) combination scores 0.
var skinLupusScoreTable = map[[3]int]int{
	{0, 0, 0}: 0,
	{1, 0, 0}: 3,
	{0, 1, 0}: 1,
	{0, 0, 1}: 2,
	{1, 1, 0}: 3,
	{1, 0, 1}: 2,
	{0, 1, 1}: 0,
	{1, 1, 1}: 2,
}

var renalBiopsyClassTable = map[string]int{
	constvars.AnswerClass2: 2,
	constvars.AnswerClass3: 3,
	constvars.AnswerClass4: 4,
	constvars.AnswerClass5: 5,
}

// encodeAnswer maps a canonical answer onto a binary model input. The
// positive sentinel defaults to "Yes" and is overridden for questions whose
// option domain is Positive/Negative, Low/Normal or High/Normal.
func encodeAnswer(value, positive string) int {
	if value == positive {
		return 1
	}
	return 0
}

// SkinLupusScore is a pure function of exactly three binary inputs.
func SkinLupusScore(discoid, subacute, acute int) int {
	return skinLupusScoreTable[[3]int{discoid, subacute, acute}]
}

// RenalBiopsyClassScore is 0 whenever the biopsy trigger is not affirmative,
// regardless of any class label supplied. An unrecognized class label under
// an affirmative trigger also encodes 0; the validator already rejects it
// before encoding unless the catalog itself is out of sync.
func RenalBiopsyClassScore(biopsyAnswer, classAnswer string) int {
	if biopsyAnswer != constvars.AnswerYes {
		return 0
	}
	return renalBiopsyClassTable[classAnswer]
}

// EncodeFeatures deterministically maps a complete normalized answer set to
// the named feature payload of the external model. Slot order and field
// names follow the model's declared schema.
func EncodeFeatures(answers map[int]string) *requests.LupusFeatures {
	discoid := encodeAnswer(answers[11], constvars.AnswerYes)
	subacute := encodeAnswer(answers[12], constvars.AnswerYes)
	acute := encodeAnswer(answers[13], constvars.AnswerYes)

	return &requests.LupusFeatures{
		AnaTest:                 encodeAnswer(answers[1], constvars.AnswerPositive),
		Fever:                   encodeAnswer(answers[2], constvars.AnswerYes),
		Leukopenia:              encodeAnswer(answers[3], constvars.AnswerLow),
		Thrombocytopenia:        encodeAnswer(answers[4], constvars.AnswerLow),
		AutoimmuneHemolysis:     encodeAnswer(answers[5], constvars.AnswerPositive),
		Delirium:                encodeAnswer(answers[6], constvars.AnswerYes),
		Psychosis:               encodeAnswer(answers[7], constvars.AnswerYes),
		Seizure:                 encodeAnswer(answers[8], constvars.AnswerYes),
		NonScarringAlopecia:     encodeAnswer(answers[9], constvars.AnswerYes),
		OralUlcers:              encodeAnswer(answers[10], constvars.AnswerYes),
		CutaneousLupus:          SkinLupusScore(discoid, subacute, acute),
		PleuralEffusion:         encodeAnswer(answers[14], constvars.AnswerYes),
		PericardialEffusion:     encodeAnswer(answers[15], constvars.AnswerYes),
		AcutePericarditis:       encodeAnswer(answers[16], constvars.AnswerYes),
		JointInvolvement:        encodeAnswer(answers[17], constvars.AnswerYes),
		Proteinuria:             encodeAnswer(answers[18], constvars.AnswerHigh),
		RenalBiopsy:             encodeAnswer(answers[19], constvars.AnswerYes),
		RenalBiopsyClass:        RenalBiopsyClassScore(answers[19], answers[20]),
		AntiCardiolipinAntibody: encodeAnswer(answers[21], constvars.AnswerYes),
		AntiB2GP1Antibody:       encodeAnswer(answers[22], constvars.AnswerYes),
		LupusAnticoagulant:      encodeAnswer(answers[23], constvars.AnswerYes),
		LowC3:                   encodeAnswer(answers[24], constvars.AnswerLow),
		LowC4:                   encodeAnswer(answers[25], constvars.AnswerLow),
		AntiDsDNAAntibody:       encodeAnswer(answers[26], constvars.AnswerYes),
		AntiSmithAntibody:       encodeAnswer(answers[27], constvars.AnswerYes),
	}
}
