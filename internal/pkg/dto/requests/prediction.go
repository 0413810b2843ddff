package requests

// LupusFeatures is the named-field payload the external classification model
// expects. The JSON field names are a fixed external contract and must be
// reproduced byte-for-byte, misspellings included.
type LupusFeatures struct {
	AnaTest                 int `json:"Ana_test"`
	Fever                   int `json:"Fever"`
	Leukopenia              int `json:"Leukopenia"`
	Thrombocytopenia        int `json:"Thrombocytopenia"`
	AutoimmuneHemolysis     int `json:"Autoimmune_hemolysis"`
	Delirium                int `json:"Delirium"`
	Psychosis               int `json:"Psychosis"`
	Seizure                 int `json:"Seizure"`
	NonScarringAlopecia     int `json:"Non_scarring_alopecia"`
	OralUlcers              int `json:"Oral_ulcers"`
	CutaneousLupus          int `json:"Cutaneous_lupus"`
	PleuralEffusion         int `json:"Pleural_effusion"`
	PericardialEffusion     int `json:"Pericardial_effusion"`
	AcutePericarditis       int `json:"Acute_pericarditis"`
	JointInvolvement        int `json:"Joint_involvement"`
	Proteinuria             int `json:"Proteinuria"`
	RenalBiopsy             int `json:"Renal_biopsy"`
	RenalBiopsyClass        int `json:"Renal_biopsy_class"`
	AntiCardiolipinAntibody int `json:"anti_cardiolipin_anitbody"`
	AntiB2GP1Antibody       int `json:"anti_b2gp1_antibody"`
	LupusAnticoagulant      int `json:"lupus_anticoagulant"`
	LowC3                   int `json:"low_c3"`
	LowC4                   int `json:"low_c4"`
	AntiDsDNAAntibody       int `json:"anti_dsDNA_antibody"`
	AntiSmithAntibody       int `json:"anti_smith_antibody"`
}
