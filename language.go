package youversion

import (
	"fmt"
	"sort"
	"strings"
)

// Language is a language tag supported by the Developer API. The set is
// closed: only the tags enumerated below are accepted.
type Language string

// Supported language tags.
const (
	LanguageAfrikaans          Language = "af"
	LanguageChineseSimplified  Language = "zh_CN"
	LanguageChineseTraditional Language = "zh_TW"
	LanguageDutch              Language = "nl"
	LanguageEnglish            Language = "en"
	LanguageFrench             Language = "fr"
	LanguageGerman             Language = "de"
	LanguageGreek              Language = "el"
	LanguageIndonesian         Language = "id"
	LanguageItalian            Language = "it"
	LanguageKhmer              Language = "km"
	LanguageKorean             Language = "ko"
	LanguagePortuguese         Language = "pt"
	LanguageRomanian           Language = "ro"
	LanguageRussian            Language = "ru"
	LanguageSpanish            Language = "es"
	LanguageSwahili            Language = "sw"
	LanguageSwedish            Language = "sv"
	LanguageTagalog            Language = "tl"
	LanguageUkrainian          Language = "uk"
	LanguageVietnamese         Language = "vi"
	LanguageZulu               Language = "zu"

	// LanguageFilipino shares the "tl" tag with Tagalog upstream.
	LanguageFilipino Language = "tl"
)

// languageNames maps each tag to its display name.
var languageNames = map[Language]string{
	LanguageAfrikaans:          "Afrikaans",
	LanguageChineseSimplified:  "Chinese Simplified",
	LanguageChineseTraditional: "Chinese Traditional",
	LanguageDutch:              "Dutch",
	LanguageEnglish:            "English",
	LanguageFrench:             "French",
	LanguageGerman:             "German",
	LanguageGreek:              "Greek",
	LanguageIndonesian:         "Indonesian",
	LanguageItalian:            "Italian",
	LanguageKhmer:              "Khmer",
	LanguageKorean:             "Korean",
	LanguagePortuguese:         "Portuguese",
	LanguageRomanian:           "Romanian",
	LanguageRussian:            "Russian",
	LanguageSpanish:            "Spanish",
	LanguageSwahili:            "Swahili",
	LanguageSwedish:            "Swedish",
	LanguageTagalog:            "Tagalog",
	LanguageUkrainian:          "Ukrainian",
	LanguageVietnamese:         "Vietnamese",
	LanguageZulu:               "Zulu",
}

// languagesByName is the reverse mapping, keyed by normalized name.
var languagesByName = func() map[string]Language {
	m := make(map[string]Language, len(languageNames)+1)
	for tag, name := range languageNames {
		m[normalizeLanguageName(name)] = tag
	}
	// Alias: Filipino resolves to the shared "tl" tag.
	m[normalizeLanguageName("Filipino")] = LanguageFilipino
	return m
}()

// normalizeLanguageName folds case and treats underscores as spaces, so
// "Chinese_Simplified" and "chinese simplified" both resolve.
func normalizeLanguageName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}

// String returns the language tag.
func (l Language) String() string { return string(l) }

// Name returns the display name for the tag, or "" for unknown tags.
func (l Language) Name() string { return languageNames[l] }

// ParseLanguage resolves a tag ("en") or a display name ("English",
// "Chinese_Simplified") to its Language. Unknown values fail with
// ErrUnsupportedLanguage.
func ParseLanguage(codeOrName string) (Language, error) {
	if _, ok := languageNames[Language(codeOrName)]; ok {
		return Language(codeOrName), nil
	}
	if lang, ok := languagesByName[normalizeLanguageName(codeOrName)]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, codeOrName)
}

// SupportedLanguages returns every supported tag, sorted.
func SupportedLanguages() []Language {
	out := make([]Language, 0, len(languageNames))
	for tag := range languageNames {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
