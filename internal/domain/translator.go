package domain

// Translator renders a message for a locale, falling back to the default locale and then to the key.
type Translator interface {
	T(locale, key string, data map[string]any) string
}
