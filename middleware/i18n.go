package middleware

import (
	"context"
	"net/http"

	"github.com/emmydush/businessos/core/i18n"
)

type translatorContextKey struct{}

// I18nConfig configures locale negotiation.
type I18nConfig struct {
	Skip SkipFunc
	I18n *i18n.I18n
	// Namespace the translator is bound to.
	Namespace string
	// LanguageExtractor overrides Accept-Language negotiation.
	LanguageExtractor func(r *http.Request) string
	// QueryParam, when set, lets ?lang=fr override the header.
	QueryParam string
}

// I18n negotiates the response language from Accept-Language, stores a
// translator in the request context and sets Content-Language.
func I18n(i18nInstance *i18n.I18n, namespace string) Middleware {
	return I18nWithConfig(I18nConfig{I18n: i18nInstance, Namespace: namespace})
}

func I18nWithConfig(cfg I18nConfig) Middleware {
	if cfg.I18n == nil {
		panic("i18n middleware: i18n instance is required")
	}
	if cfg.Namespace == "" {
		panic("i18n middleware: namespace is required")
	}
	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) string {
			if cfg.QueryParam != "" {
				if lang := r.URL.Query().Get(cfg.QueryParam); lang != "" {
					return cfg.I18n.Match(lang)
				}
			}
			return cfg.I18n.Match(r.Header.Get("Accept-Language"))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			language := cfg.LanguageExtractor(r)
			if language == "" {
				language = cfg.I18n.DefaultLanguage()
			}

			w.Header().Set("Content-Language", language)
			w.Header().Add("Vary", "Accept-Language")

			tr := i18n.NewTranslator(cfg.I18n, language, cfg.Namespace)
			ctx := context.WithValue(r.Context(), translatorContextKey{}, tr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator returns the translator stored by I18n.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	tr, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return tr, ok
}
