package domain

import "strings"

// Language identifies a programming language supported by the evaluation
// engine. The set is fixed; the extension table below is the single source
// of truth for the on-disk filename suffix of a stored artifact.
type Language string

const (
	LanguageC          Language = "c"
	LanguageCpp        Language = "cpp"
	LanguageJava       Language = "java"
	LanguagePython     Language = "python"
	LanguageJavascript Language = "javascript"
	LanguageGo         Language = "go"
)

var langExtMap = map[Language]string{
	LanguageC:          "c",
	LanguageCpp:        "cpp",
	LanguageJava:       "java",
	LanguagePython:     "py",
	LanguageJavascript: "js",
	LanguageGo:         "go",
}

// ParseLanguage maps a caller-supplied language name to a supported Language.
// The second return value reports whether the language is supported.
func ParseLanguage(name string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(name)))
	_, ok := langExtMap[lang]
	return lang, ok
}

// LanguageByExtension resolves a filename extension (without the dot) back to
// a supported Language. Used for the file-upload submission variant.
func LanguageByExtension(ext string) (Language, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for lang, e := range langExtMap {
		if e == ext {
			return lang, true
		}
	}
	return "", false
}

// Extension returns the filename extension for the language
func (l Language) Extension() (string, bool) {
	ext, ok := langExtMap[l]
	return ext, ok
}

// SupportedLanguages lists every supported language name in a stable order
func SupportedLanguages() []string {
	langs := []Language{
		LanguageC,
		LanguageCpp,
		LanguageJava,
		LanguagePython,
		LanguageJavascript,
		LanguageGo,
	}
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, string(l))
	}
	return names
}
