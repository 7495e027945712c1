// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"strconv"
	"time"
)

// dayPeriod holds the localized AM/PM markers for 12-hour clocks and
// whether the marker precedes the time (Chinese) or follows it.
type dayPeriod struct {
	am, pm string
	prefix bool
}

var dayPeriods = map[Language]dayPeriod{
	LangEnglish: {am: "AM", pm: "PM"},
	LangGerman:  {am: "AM", pm: "PM"},
	LangChinese: {am: "上午", pm: "下午", prefix: true},
	LangHindi:   {am: "पूर्वाह्न", pm: "अपराह्न"},
	LangSpanish: {am: "AM", pm: "PM"},
	LangArabic:  {am: "ص", pm: "م"},
	LangTurkish: {am: "ÖÖ", pm: "ÖS"},
	LangFrench:  {am: "AM", pm: "PM"},
	LangRussian: {am: "AM", pm: "PM"},
}

// FormatClock renders a wall-clock label for a timestamp in the given
// language. twelveHour selects the localized 12-hour form; otherwise the
// label is the locale-neutral 24-hour "15:04".
func FormatClock(t time.Time, lang Language, twelveHour bool) string {
	if !twelveHour {
		return t.Format("15:04")
	}

	p, ok := dayPeriods[lang]
	if !ok {
		p = dayPeriods[LangEnglish]
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	marker := p.am
	if t.Hour() >= 12 {
		marker = p.pm
	}

	clock := strconv.Itoa(hour) + ":" + t.Format("04")
	if p.prefix {
		return marker + " " + clock
	}
	return clock + " " + marker
}
