package catalog

// localeNames maps the provider's published locale identifiers to
// human-readable labels. The table is static; it has to be extended by hand
// when the provider adds locales.
var localeNames = map[string]string{
	"af-ZA":  "Afrikaans (South Africa)",
	"ar-XA":  "Arabic",
	"eu-ES":  "Basque (Spain)",
	"bn-IN":  "Bengali (India)",
	"bg-BG":  "Bulgarian (Bulgaria)",
	"ca-ES":  "Catalan (Spain)",
	"yue-HK": "Chinese (Hong Kong)",
	"cs-CZ":  "Czech (Czech Republic)",
	"da-DK":  "Danish (Denmark)",
	"nl-BE":  "Dutch (Belgium)",
	"nl-NL":  "Dutch (Netherlands)",
	"en-AU":  "English (Australia)",
	"en-IN":  "English (India)",
	"en-GB":  "English (UK)",
	"en-US":  "English (US)",
	"fil-PH": "Filipino (Philippines)",
	"fi-FI":  "Finnish (Finland)",
	"fr-CA":  "French (Canada)",
	"fr-FR":  "French (France)",
	"gl-ES":  "Galician (Spain)",
	"de-DE":  "German (Germany)",
	"el-GR":  "Greek (Greece)",
	"gu-IN":  "Gujarati (India)",
	"he-IL":  "Hebrew (Israel)",
	"hi-IN":  "Hindi (India)",
	"hu-HU":  "Hungarian (Hungary)",
	"is-IS":  "Icelandic (Iceland)",
	"id-ID":  "Indonesian (Indonesia)",
	"it-IT":  "Italian (Italy)",
	"ja-JP":  "Japanese (Japan)",
	"kn-IN":  "Kannada (India)",
	"ko-KR":  "Korean (South Korea)",
	"lv-LV":  "Latvian (Latvia)",
	"lt-LT":  "Lithuanian (Lithuania)",
	"ms-MY":  "Malay (Malaysia)",
	"ml-IN":  "Malayalam (India)",
	"cmn-CN": "Mandarin Chinese (China)",
	"cmn-TW": "Mandarin Chinese (Taiwan)",
	"mr-IN":  "Marathi (India)",
	"nb-NO":  "Norwegian (Norway)",
	"pl-PL":  "Polish (Poland)",
	"pt-BR":  "Portuguese (Brazil)",
	"pt-PT":  "Portuguese (Portugal)",
	"pa-IN":  "Punjabi (India)",
	"ro-RO":  "Romanian (Romania)",
	"ru-RU":  "Russian (Russia)",
	"sr-RS":  "Serbian (Serbia)",
	"sk-SK":  "Slovak (Slovakia)",
	"es-ES":  "Spanish (Spain)",
	"es-US":  "Spanish (US)",
	"sv-SE":  "Swedish (Sweden)",
	"ta-IN":  "Tamil (India)",
	"te-IN":  "Telugu (India)",
	"th-TH":  "Thai (Thailand)",
	"tr-TR":  "Turkish (Turkey)",
	"uk-UA":  "Ukrainian (Ukraine)",
	"vi-VN":  "Vietnamese (Vietnam)",
}

// LanguageDisplayName returns the human-readable label for a locale
// identifier. Unknown identifiers pass through unchanged, so the function is
// total and never fails.
func LanguageDisplayName(code string) string {
	if name, ok := localeNames[code]; ok {
		return name
	}
	return code
}
