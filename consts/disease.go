package consts

// Supported disease kinds.
const (
	DiseaseHeart    = "heart"
	DiseaseDiabetes = "diabetes"
	DiseaseCancer   = "cancer"
	DiseaseCovid    = "covid"
)

// DiseaseFields maps each disease kind to its ordered list of required
// input fields. The order matters: it is the feature-vector order the
// pretrained classifiers were fitted with. Process-wide configuration,
// never mutated at runtime.
var DiseaseFields map[string][]string

func init() {
	DiseaseFields = make(map[string][]string)

	DiseaseFields[DiseaseHeart] = []string{
		"age", "gender", "cp", "trestbps", "chol", "fbs", "restecg",
		"thalach", "exang", "oldpeak", "slope", "ca", "thal",
	}
	DiseaseFields[DiseaseDiabetes] = []string{
		"Pregnancies", "Glucose", "BloodPressure", "SkinThickness",
		"Insulin", "BMI", "DiabetesPedigreeFunction", "Age",
	}
	DiseaseFields[DiseaseCancer] = []string{
		"fo", "fhi", "flo", "Jitter_percent", "Jitter_Abs", "RAP", "PPQ",
		"DDP", "Shimmer", "Shimmer_dB", "APQ3", "APQ5", "APQ", "DDA",
		"NHR", "HNR", "RPDE", "DFA", "spread1", "spread2", "D2", "PPE",
	}
	DiseaseFields[DiseaseCovid] = []string{
		"fever", "cough", "breathlessness", "sore_throat", "headache",
		"fatigue", "loss_of_smell", "contact", "travel_history",
	}
}

// ValidDisease reports whether a disease kind is supported.
func ValidDisease(disease string) bool {
	_, ok := DiseaseFields[disease]
	return ok
}

// FieldsFor returns the ordered field list for a disease kind. Callers
// must not modify the returned slice.
func FieldsFor(disease string) []string {
	return DiseaseFields[disease]
}

// Diseases returns all supported disease kinds.
func Diseases() []string {
	return []string{DiseaseHeart, DiseaseDiabetes, DiseaseCancer, DiseaseCovid}
}
