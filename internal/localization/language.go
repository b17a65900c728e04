package localization

// Language is one of the fixed set of supported locales.
type Language string

const (
	Korean             Language = "ko"
	English            Language = "en"
	Japanese           Language = "ja"
	ChineseTraditional Language = "zh-TW"
)

// Default is the base language. Dictionaries and entity base fields are
// authored in it, and it is the ultimate fallback everywhere.
const Default = Korean

var supported = []Language{Korean, English, Japanese, ChineseTraditional}

// Supported returns the closed set of languages, base first.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Parse returns the Language for code when it is supported.
func Parse(code string) (Language, bool) {
	for _, l := range supported {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

func (l Language) String() string { return string(l) }

// Native returns the language's name in itself, for language pickers.
func (l Language) Native() string {
	switch l {
	case Korean:
		return "한국어"
	case English:
		return "English"
	case Japanese:
		return "日本語"
	case ChineseTraditional:
		return "繁體中文"
	default:
		return string(l)
	}
}
