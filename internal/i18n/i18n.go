// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n holds the UI string tables and locale helpers for the
// ragchat client. Every supported language carries a full table; lookups
// for unknown languages fall back to English.
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	LangEnglish Language = "en"
	LangGerman  Language = "de"
	LangChinese Language = "zh"
	LangHindi   Language = "hi"
	LangSpanish Language = "es"
	LangArabic  Language = "ar"
	LangTurkish Language = "tr"
	LangFrench  Language = "fr"
	LangRussian Language = "ru"
)

// Supported returns all supported languages in display order.
func Supported() []Language {
	return []Language{
		LangEnglish, LangGerman, LangChinese, LangHindi, LangSpanish,
		LangArabic, LangTurkish, LangFrench, LangRussian,
	}
}

// matcher resolves arbitrary BCP 47 codes against the supported set.
// Order must mirror Supported() so match indexes line up.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.Chinese,
	language.Hindi,
	language.Spanish,
	language.Arabic,
	language.Turkish,
	language.French,
	language.Russian,
})

// Resolve maps an arbitrary language code ("en-US", "zh-Hans", a persisted
// settings value) onto a supported Language. Unrecognized codes resolve to
// English.
func Resolve(code string) Language {
	if code == "" {
		return LangEnglish
	}
	tag, err := language.Parse(code)
	if err != nil {
		return LangEnglish
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return LangEnglish
	}
	return Supported()[index]
}

// IsValid reports whether code is exactly one of the supported languages.
func IsValid(code string) bool {
	for _, l := range Supported() {
		if string(l) == code {
			return true
		}
	}
	return false
}

// IsRTL reports whether the language is rendered right-to-left.
func IsRTL(lang Language) bool {
	return lang == LangArabic
}

// Locale returns the BCP 47 locale used for timestamp formatting.
func Locale(lang Language) string {
	switch lang {
	case LangEnglish:
		return "en-US"
	case LangGerman:
		return "de-DE"
	case LangChinese:
		return "zh-CN"
	case LangHindi:
		return "hi-IN"
	case LangSpanish:
		return "es-ES"
	case LangArabic:
		return "ar-SA"
	case LangTurkish:
		return "tr-TR"
	case LangFrench:
		return "fr-FR"
	case LangRussian:
		return "ru-RU"
	default:
		return "en-US"
	}
}
