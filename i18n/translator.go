package i18n

// Translator retrieves messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "invalid_type":
		return "invalid type"
	case "required":
		return "required property missing"
	case "unknown_key":
		return "unknown key"
	case "invalid_enum":
		return "invalid enum value"
	case "invalid_literal":
		return "invalid literal value"
	case "discriminator_missing":
		return "discriminator missing"
	case "discriminator_unknown":
		return "unknown discriminator value"
	case "parse_error":
		return "parse error"
	}
	return code
}

// Default returns the built-in Translator.
func Default() Translator { return dictTranslator{} }

// T resolves code through the default Translator.
func T(code string, data map[string]string) string {
	return Default().Message(code, data)
}
