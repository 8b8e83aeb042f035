// internal/i18n/i18n.go
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLang = "en"

// Catalog holds one flat key→message map per language. Lookups fall back to
// the default language, then to the key itself.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
}

var instance *Catalog
var once sync.Once

func Initialize() error {
	var err error
	once.Do(func() {
		instance = &Catalog{
			translations: make(map[string]map[string]string),
		}
		err = instance.LoadTranslations("./internal/i18n/locales")
	})
	return err
}

// LoadTranslations reads every *.json file in localesPath; the file name
// minus extension becomes the language code.
func (c *Catalog) LoadTranslations(localesPath string) error {
	entries, err := os.ReadDir(localesPath)
	if err != nil {
		return fmt.Errorf("failed to read locales directory %s: %w", localesPath, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(localesPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", entry.Name(), err)
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		c.mu.Lock()
		c.translations[lang] = translations
		c.mu.Unlock()
		loaded++
	}

	if loaded == 0 {
		return fmt.Errorf("no locale files found in %s", localesPath)
	}
	return nil
}

func (c *Catalog) T(lang, key string, args ...interface{}) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, l := range []string{lang, defaultLang} {
		if text, ok := c.translations[l][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(text, args...)
			}
			return text
		}
	}
	return key
}

// T translates key for lang against the shared catalog. Before Initialize,
// or for unknown keys, it returns the key unchanged.
func T(lang, key string, args ...interface{}) string {
	if instance == nil {
		return key
	}
	return instance.T(lang, key, args...)
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{defaultLang}
	}

	instance.mu.RLock()
	defer instance.mu.RUnlock()

	langs := make([]string, 0, len(instance.translations))
	for lang := range instance.translations {
		langs = append(langs, lang)
	}
	return langs
}
