package localization

import "strings"

// Text picks the display variant of a localizable field: the override for
// lang when one is usable, otherwise base. An override is usable only when
// lang is not the base language and its trimmed value is non-empty.
func Text(base string, overrides map[string]string, lang Language) string {
	if lang == Default || overrides == nil {
		return base
	}
	v, ok := overrides[string(lang)]
	if !ok || strings.TrimSpace(v) == "" {
		return base
	}
	return v
}

// List is Text for list-shaped payloads (checklists, content blocks).
// Fallback is all-or-nothing per language: an override list is used only
// when it has at least one element, never merged item by item.
func List[T any](base []T, overrides map[string][]T, lang Language) []T {
	if lang == Default || overrides == nil {
		return base
	}
	v, ok := overrides[string(lang)]
	if !ok || len(v) == 0 {
		return base
	}
	return v
}
