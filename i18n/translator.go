package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "invalid_length":
			return "要素数が不正です"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "discriminator_missing":
			return "objectClassName がありません"
		case "discriminator_unknown":
			return "未知の objectClassName です"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		case "too_deep":
			return "入れ子が深すぎます"
		case "invalid_value":
			return "値が不正です"
		case "invalid_format":
			return "書式が不正です"
		case "overflow":
			return "値が範囲外です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "invalid_length":
			return "invalid length"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "discriminator_missing":
			return "objectClassName missing"
		case "discriminator_unknown":
			return "unknown objectClassName"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		case "too_deep":
			return "too deeply nested"
		case "invalid_value":
			return "invalid value"
		case "invalid_format":
			return "invalid format"
		case "overflow":
			return "value out of range"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
