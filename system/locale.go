// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// DefaultLocale is returned when no locale can be determined.
const DefaultLocale = "en-US"

// Locale returns the user locale as a BCP 47 tag such as "en-US". The
// configured locale wins over the one reported by the driver, which
// wins over the one of the operating system.
func (a *App) Locale() string {
	a.checkThread("App.Locale")
	if a.cfg.Locale != "" {
		return NormalizeLocale(a.cfg.Locale)
	}
	if l := a.driver.Locale(); l != "" {
		return NormalizeLocale(l)
	}
	l, err := locale.GetLocale()
	if err != nil {
		slog.Debug("system: no platform locale", "err", err)
		return DefaultLocale
	}
	return NormalizeLocale(l)
}

// NormalizeLocale converts a POSIX or BCP 47 locale name, such as
// "fr_CA.UTF-8", to a canonical BCP 47 tag such as "fr-CA". It returns
// [DefaultLocale] for names it cannot parse.
func NormalizeLocale(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	return tag.String()
}
