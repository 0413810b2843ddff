package responses

type SymptomQuestion struct {
	Number        int      `json:"number"`
	Text          string   `json:"text"`
	TextArabic    string   `json:"textArabic,omitempty"`
	Options       []string `json:"options"`
	OptionsArabic []string `json:"optionsArabic,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}
