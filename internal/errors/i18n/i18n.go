// Package i18n loads embedded message catalogs for user-facing error
// text. Catalog files live under locales/, one YAML file per locale.
package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale; every code present in any
// catalog must be present here.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Catalog holds the messages for one locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

var (
	catalogs = mustLoadEmbedded()
	matcher  = newMatcher(catalogs)
)

// Locale reports the catalog's locale tag.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for a code, substituting {{.Key}}
// placeholders from metadata. Unknown codes fall back to the code itself
// so a missing catalog entry never hides an error.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	if c == nil {
		return code
	}
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	if len(metadata) == 0 || !strings.Contains(raw, "{{") {
		return raw
	}

	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return raw
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, metadata); err != nil {
		return raw
	}
	return out.String()
}

// GetCatalog returns the best catalog for a locale, falling back to the
// base locale when no better match exists.
func GetCatalog(locale string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		return catalogs[BaseLocale]
	}
	_, index, _ := matcher.tags.Match(tag)
	if index < 0 || index >= len(matcher.locales) {
		return catalogs[BaseLocale]
	}
	return catalogs[matcher.locales[index]]
}

type localeMatcher struct {
	tags    language.Matcher
	locales []string
}

func newMatcher(loaded map[string]*Catalog) localeMatcher {
	locales := make([]string, 0, len(loaded))
	tags := make([]language.Tag, 0, len(loaded))

	// Base locale first so it wins ties.
	if _, ok := loaded[BaseLocale]; ok {
		locales = append(locales, BaseLocale)
		tags = append(tags, language.MustParse(BaseLocale))
	}
	for locale := range loaded {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		locales = append(locales, locale)
		tags = append(tags, tag)
	}
	return localeMatcher{tags: language.NewMatcher(tags), locales: locales}
}

func mustLoadEmbedded() map[string]*Catalog {
	loaded, err := loadFromFS(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("load embedded message catalogs: %v", err))
	}
	if _, ok := loaded[BaseLocale]; !ok {
		panic(fmt.Sprintf("missing base locale catalog %s", BaseLocale))
	}
	return loaded
}

func loadFromFS(catalogFS fs.FS) (map[string]*Catalog, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}

	loaded := make(map[string]*Catalog, len(paths))
	for _, filePath := range paths {
		raw, err := fs.ReadFile(catalogFS, filePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filePath, err)
		}

		locale := strings.TrimSuffix(path.Base(filePath), ".yaml")
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("catalog %s has invalid locale name: %w", filePath, err)
		}
		loaded[locale] = &Catalog{locale: locale, messages: messages}
	}
	return loaded, nil
}
