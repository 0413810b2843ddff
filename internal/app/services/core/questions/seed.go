package questions

import (
	"context"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"time"
)

var (
	yesNoOptions             = []string{constvars.AnswerYes, constvars.AnswerNo}
	yesNoOptionsArabic       = []string{"نعم", "لا"}
	posNegOptions            = []string{constvars.AnswerPositive, constvars.AnswerNegative}
	posNegOptionsArabic      = []string{"إيجابي", "سلبي"}
	lowNormalOptions         = []string{constvars.AnswerLow, constvars.AnswerNormal}
	lowNormalOptionsArabic   = []string{"منخفض", "طبيعي"}
	highNormalOptions        = []string{constvars.AnswerHigh, constvars.AnswerNormal}
	highNormalOptionsArabic  = []string{"مرتفع", "طبيعي"}
	biopsyClassOptions       = []string{constvars.AnswerClass2, constvars.AnswerClass3, constvars.AnswerClass4, constvars.AnswerClass5}
	biopsyClassOptionsArabic = []string{"الفئة 2", "الفئة 3", "الفئة 4", "الفئة 5"}
)

type seedQuestion struct {
	Text          string
	TextArabic    string
	Options       []string
	OptionsArabic []string
	Explanation   string
	ExplanationAr string
}

// The question order is fixed: feature encoding addresses questions by
// number, so renumbering here would silently corrupt the model input.
var seedQuestions = []seedQuestion{
	{
		Text:          "(ANA) What is the result of your ANA (anti-nuclear antibody) lab test?",
		TextArabic:    "ما هي نتيجة تحليل الأجسام المضادة للنواة (ANA)؟",
		Options:       posNegOptions,
		OptionsArabic: posNegOptionsArabic,
		Explanation:   "ANA is the entry criterion for lupus classification.",
		ExplanationAr: "تحليل ANA هو المعيار الأساسي لتصنيف الذئبة.",
	},
	{
		Text:          "(Fever) Have you experienced unexplained, recurrent fever above 38°C (100.4°F)?",
		TextArabic:    "هل عانيت من حمى متكررة غير مفسرة أعلى من 38 درجة مئوية؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Recurrent unexplained fever is a constitutional symptom of active lupus.",
		ExplanationAr: "الحمى المتكررة غير المفسرة من الأعراض العامة للذئبة النشطة.",
	},
	{
		Text:          "(Leukopenia) Following the complete blood count (CBC), what is your white blood cell (WBC) count?",
		TextArabic:    "بعد إجراء صورة الدم الكاملة، ما هي نتيجة عدد كرات الدم البيضاء؟",
		Options:       lowNormalOptions,
		OptionsArabic: lowNormalOptionsArabic,
		Explanation:   "A low white blood cell count (leukopenia) is a hematologic sign of lupus.",
		ExplanationAr: "انخفاض عدد كرات الدم البيضاء من العلامات الدموية للذئبة.",
	},
	{
		Text:          "(Thrombocytopenia) Following the complete blood count (CBC), What is your platelets result?",
		TextArabic:    "بعد إجراء صورة الدم الكاملة، ما هي نتيجة الصفائح الدموية؟",
		Options:       lowNormalOptions,
		OptionsArabic: lowNormalOptionsArabic,
		Explanation:   "A low platelet count (thrombocytopenia) is a hematologic sign of lupus.",
		ExplanationAr: "انخفاض الصفائح الدموية من العلامات الدموية للذئبة.",
	},
	{
		Text:          "(Autoimmune hemolysis) What is the result of Direct antiglobulin (Direct Coombs) test?",
		TextArabic:    "ما هي نتيجة اختبار كومبس المباشر؟",
		Options:       posNegOptions,
		OptionsArabic: posNegOptionsArabic,
		Explanation:   "A positive direct Coombs test indicates autoimmune hemolysis.",
		ExplanationAr: "اختبار كومبس الإيجابي يشير إلى تحلل الدم المناعي الذاتي.",
	},
	{
		Text:          "(Delirium) Have you experienced any periods of confusion, disorientation, or difficulty thinking clearly?",
		TextArabic:    "هل مررت بفترات من الارتباك أو التوهان أو صعوبة التفكير بوضوح؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Delirium is a neuropsychiatric manifestation of lupus.",
		ExplanationAr: "الهذيان من المظاهر العصبية النفسية للذئبة.",
	},
	{
		Text:          "(Psychosis) Have you experienced situations where you were feeling unreal, dissociated or unusual thoughts?",
		TextArabic:    "هل مررت بمواقف شعرت فيها بعدم الواقعية أو الانفصال أو أفكار غير معتادة؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Psychosis is a neuropsychiatric manifestation of lupus.",
		ExplanationAr: "الذهان من المظاهر العصبية النفسية للذئبة.",
	},
	{
		Text:          "(Seizure) Have you ever had a seizure or convulsion?",
		TextArabic:    "هل أصبت من قبل بنوبة صرع أو تشنجات؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Seizures are a neuropsychiatric manifestation of lupus.",
		ExplanationAr: "النوبات من المظاهر العصبية النفسية للذئبة.",
	},
	{
		Text:          "(Non-scarring Alopecia) Have you noticed unusual hair loss where the scalp appears normal?",
		TextArabic:    "هل لاحظت تساقط شعر غير معتاد مع بقاء فروة الرأس طبيعية المظهر؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Non-scarring hair loss is a mucocutaneous sign of lupus.",
		ExplanationAr: "تساقط الشعر غير الندبي من العلامات الجلدية للذئبة.",
	},
	{
		Text:          "(Oral Ulcers) Have you had any painful sores in your mouth, particularly on your mouth palate",
		TextArabic:    "هل أصبت بتقرحات مؤلمة في الفم وخاصة في سقف الحلق؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Oral ulcers are a mucocutaneous sign of lupus.",
		ExplanationAr: "تقرحات الفم من العلامات الجلدية المخاطية للذئبة.",
	},
	{
		Text:          "(Discoid Lupus) Have you developed any round, scaly patches on your skin that might leave scars?",
		TextArabic:    "هل ظهرت لديك بقع جلدية دائرية متقشرة قد تترك ندوبًا؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Discoid lesions are a chronic cutaneous form of lupus.",
		ExplanationAr: "الآفات القرصية شكل جلدي مزمن من الذئبة.",
	},
	{
		Text:          "(Subacute Cutaneous Lupus) Have you noticed red, ring-shaped or scaly patches on sun-exposed skin that heal without scarring?",
		TextArabic:    "هل لاحظت بقعًا حمراء حلقية أو متقشرة على الجلد المعرض للشمس تلتئم دون ندوب؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Subacute cutaneous lesions are photosensitive and heal without scarring.",
		ExplanationAr: "الآفات الجلدية تحت الحادة حساسة للضوء وتلتئم دون ندوب.",
	},
	{
		Text:          "(Acute Cutaneous Lupus) Have you noticed a rash on your cheeks and nose, sometimes called a butterfly rash?",
		TextArabic:    "هل لاحظت طفحًا جلديًا على الخدين والأنف يعرف بطفح الفراشة؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "The malar (butterfly) rash is the acute cutaneous form of lupus.",
		ExplanationAr: "طفح الفراشة هو الشكل الجلدي الحاد للذئبة.",
	},
	{
		Text:          "(Pleural Effusion) Have you experienced chest pain that increases while breathing?",
		TextArabic:    "هل عانيت من ألم في الصدر يزداد مع التنفس؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Pleuritic chest pain suggests fluid around the lungs.",
		ExplanationAr: "ألم الصدر الجنبي يشير إلى وجود سوائل حول الرئتين.",
	},
	{
		Text:          "(Pericardial Effusion) Have you experienced chest pain and shortness of breath or has any doctor mentioned fluid around your heart?",
		TextArabic:    "هل عانيت من ألم في الصدر وضيق في التنفس أو أخبرك طبيب بوجود سوائل حول القلب؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Fluid around the heart is a serosal manifestation of lupus.",
		ExplanationAr: "السوائل حول القلب من المظاهر المصلية للذئبة.",
	},
	{
		Text:          "(Acute Pericarditis) Has any chest pain affected your daily activities, like walking or climbing stairs?",
		TextArabic:    "هل أثر ألم الصدر على أنشطتك اليومية مثل المشي أو صعود السلم؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Pericarditis pain typically worsens with exertion and lying flat.",
		ExplanationAr: "ألم التهاب التامور يزداد عادة مع المجهود والاستلقاء.",
	},
	{
		Text:          "(Joint Involvement) Do you have joint pain or swelling that moves from one joint to another?",
		TextArabic:    "هل تعاني من ألم أو تورم في المفاصل ينتقل من مفصل إلى آخر؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Migratory joint pain and swelling is the musculoskeletal sign of lupus.",
		ExplanationAr: "ألم المفاصل المتنقل من العلامات العضلية الهيكلية للذئبة.",
	},
	{
		Text:          "(Proteinuria) After doing the Urine test. What is the protein levels result?",
		TextArabic:    "بعد إجراء تحليل البول، ما هي نتيجة مستوى البروتين؟",
		Options:       highNormalOptions,
		OptionsArabic: highNormalOptionsArabic,
		Explanation:   "High urine protein indicates kidney involvement.",
		ExplanationAr: "ارتفاع بروتين البول يشير إلى إصابة الكلى.",
	},
	{
		Text:          "(Renal Biopsy Lupus Nephritis) Has a kidney biopsy shown any mild to moderate changes or significant to any changes?",
		TextArabic:    "هل أظهرت خزعة الكلى أي تغيرات خفيفة إلى متوسطة أو تغيرات ملحوظة؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "A positive biopsy gates the lupus nephritis class question.",
		ExplanationAr: "الخزعة الإيجابية تستدعي سؤال فئة التهاب الكلية الذئبي.",
	},
	{
		Text:          "(Renal Biopsy Class) Which lupus nephritis class did the kidney biopsy report?",
		TextArabic:    "ما هي فئة التهاب الكلية الذئبي التي أظهرها تقرير خزعة الكلى؟",
		Options:       biopsyClassOptions,
		OptionsArabic: biopsyClassOptionsArabic,
		Explanation:   "Only answered when the renal biopsy question is answered 'Yes'.",
		ExplanationAr: "يجاب عليه فقط عندما تكون إجابة سؤال الخزعة 'نعم'.",
	},
	{
		Text:          "(Anti-cardiolipin Antibodies) Has any blood test shown positive for anticardiolipin antibodies?",
		TextArabic:    "هل أظهر أي تحليل دم نتيجة إيجابية للأجسام المضادة للكارديوليبين؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Antiphospholipid antibody associated with lupus.",
		ExplanationAr: "جسم مضاد للفوسفوليبيد مرتبط بالذئبة.",
	},
	{
		Text:          "(Anti-B2GP1 Antibodies) Has any blood test shown positive for anti-β2GP1 antibodies?",
		TextArabic:    "هل أظهر أي تحليل دم نتيجة إيجابية للأجسام المضادة β2GP1؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Antiphospholipid antibody associated with lupus.",
		ExplanationAr: "جسم مضاد للفوسفوليبيد مرتبط بالذئبة.",
	},
	{
		Text:          "(Lupus Anticoagulant) Has any blood test shown positive for lupus anticoagulant?",
		TextArabic:    "هل أظهر أي تحليل دم نتيجة إيجابية لمضاد تخثر الذئبة؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Antiphospholipid antibody associated with lupus.",
		ExplanationAr: "جسم مضاد للفوسفوليبيد مرتبط بالذئبة.",
	},
	{
		Text:          "(C3) Following the total Complement Blood (CH50) test, what is your C3 protein result?",
		TextArabic:    "بعد اختبار المتممة الكلي (CH50)، ما هي نتيجة بروتين C3؟",
		Options:       lowNormalOptions,
		OptionsArabic: lowNormalOptionsArabic,
		Explanation:   "Low C3 reflects complement consumption in active lupus.",
		ExplanationAr: "انخفاض C3 يعكس استهلاك المتممة في الذئبة النشطة.",
	},
	{
		Text:          "(C4) Following the total Complement Blood (CH50) test, What is your C4 protein result?",
		TextArabic:    "بعد اختبار المتممة الكلي (CH50)، ما هي نتيجة بروتين C4؟",
		Options:       lowNormalOptions,
		OptionsArabic: lowNormalOptionsArabic,
		Explanation:   "Low C4 reflects complement consumption in active lupus.",
		ExplanationAr: "انخفاض C4 يعكس استهلاك المتممة في الذئبة النشطة.",
	},
	{
		Text:          "(Anti-dsDNA Antibody) Has any blood test shown positive for anti-dsDNA antibodies?",
		TextArabic:    "هل أظهر أي تحليل دم نتيجة إيجابية للأجسام المضادة للحمض النووي مزدوج السلسلة؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Highly specific lupus autoantibody.",
		ExplanationAr: "جسم مضاد ذاتي عالي الخصوصية للذئبة.",
	},
	{
		Text:          "(Anti-Smith Antibody) Has any blood test shown positive for anti-Smith antibodies?",
		TextArabic:    "هل أظهر أي تحليل دم نتيجة إيجابية للأجسام المضادة سميث؟",
		Options:       yesNoOptions,
		OptionsArabic: yesNoOptionsArabic,
		Explanation:   "Highly specific lupus autoantibody.",
		ExplanationAr: "جسم مضاد ذاتي عالي الخصوصية للذئبة.",
	},
}

// SeedData returns the fixed 27-question catalog, numbered ascending from 1.
func SeedData() []models.SymptomQuestion {
	now := time.Now()
	formatted := make([]models.SymptomQuestion, 0, len(seedQuestions))
	for index, question := range seedQuestions {
		formatted = append(formatted, models.SymptomQuestion{
			QuestionNumber:     index + 1,
			QuestionText:       question.Text,
			QuestionTextArabic: question.TextArabic,
			Options:            question.Options,
			OptionsArabic:      question.OptionsArabic,
			Explanation:        question.Explanation,
			ExplanationArabic:  question.ExplanationAr,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
	}
	return formatted
}

// Seed wipes and re-inserts the catalog. Used by cmd/migration only.
func Seed(ctx context.Context, repository contracts.QuestionRepository) error {
	return repository.ReplaceAll(ctx, SeedData())
}
