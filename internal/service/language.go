package service

// languageNames maps the language codes the frontend sends to the display
// names used in prompts. Unrecognized or absent codes fall back to English.
var languageNames = map[string]string{
	"en": "English",
	"bn": "Bengali",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"ur": "Urdu",
}

const defaultLanguage = "English"

// languageName resolves a caller-selected language code to a display name.
func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return defaultLanguage
}
