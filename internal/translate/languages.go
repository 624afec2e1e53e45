// Package translate translates learner-facing text between English and the
// scheduled Indian languages.
package translate

// Language is a supported language code and its English name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// English is the language all built-in text is written in.
const English = "en"

// Languages lists every supported language.
var Languages = []Language{
	{"hi", "Hindi"},
	{"ta", "Tamil"},
	{"te", "Telugu"},
	{"kn", "Kannada"},
	{"ml", "Malayalam"},
	{"mr", "Marathi"},
	{"gu", "Gujarati"},
	{"bn", "Bengali"},
	{"pa", "Punjabi"},
	{"or", "Odia"},
	{"as", "Assamese"},
	{"ur", "Urdu"},
	{"sa", "Sanskrit"},
	{"kok", "Konkani"},
	{"mni", "Manipuri"},
	{"mai", "Maithili"},
	{"sd", "Sindhi"},
	{"ks", "Kashmiri"},
	{"dg", "Dogri"},
	{"bodo", "Bodo"},
	{"sat", "Santali"},
	{English, "English"},
}

var languageNames = func() map[string]string {
	m := make(map[string]string, len(Languages))
	for _, l := range Languages {
		m[l.Code] = l.Name
	}
	return m
}()

// LanguageName returns the English name of a language code.
func LanguageName(code string) (string, bool) {
	name, ok := languageNames[code]
	return name, ok
}

// Supported reports whether code is a supported language.
func Supported(code string) bool {
	_, ok := languageNames[code]
	return ok
}
