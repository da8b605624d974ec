package engine

import (
	"strings"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/go-text/typesetting/language"
	xlang "golang.org/x/text/language"
)

// LanguageMatches checks if lang matches any of the language ranges in
// rangeList. Ranges are separated by any of ";:, ". A range matches if it
// is "*" or if it equals lang or a prefix of lang ending at a '-'. Matching
// is case-insensitive.
//
//	LanguageMatches("de-ch", "en;de")  == true
//	LanguageMatches("deu", "de")       == false
func LanguageMatches(lang language.Language, rangeList string) bool {
	l := string(lang)
	for p := rangeList; p != ""; {
		end := strings.IndexAny(p, ";:, ")
		if end < 0 {
			end = len(p)
		}
		r := p[:end]
		if r == "*" {
			return true
		}
		if len(l) >= len(r) && strings.EqualFold(l[:len(r)], r) &&
			(len(l) == len(r) || l[len(r)] == '-') {
			return true
		}
		if end == len(p) {
			break
		}
		p = p[end+1:]
	}
	return false
}

// LanguageFromString canonicalizes a language tag, e.g. "en_US" to "en-us".
func LanguageFromString(s string) language.Language {
	return language.NewLanguage(s)
}

var defaultLanguage struct {
	once sync.Once
	lang language.Language
}

// DefaultLanguage returns the language of the user's environment. It is
// determined once, from the locale settings of the process.
// If no locale can be found, "en" is returned.
func DefaultLanguage() language.Language {
	defaultLanguage.once.Do(func() {
		defaultLanguage.lang = detectLanguage()
		tracer().Infof("default language is %q", defaultLanguage.lang)
	})
	return defaultLanguage.lang
}

func detectLanguage() language.Language {
	userLocale, err := jj.DetectIETF()
	if err == nil {
		if tag, err := xlang.Parse(userLocale); err == nil && tag != xlang.Und {
			return language.NewLanguage(tag.String())
		}
		tracer().Debugf("cannot parse user locale %q", userLocale)
	} else {
		tracer().Debugf("detecting user locale: %v", err)
	}
	if lang := language.DefaultLanguage(); lang != "" {
		return lang
	}
	return language.NewLanguage("en")
}
