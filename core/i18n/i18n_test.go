package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/i18n"
)

func newCatalog(t *testing.T, opts ...i18n.Option) *i18n.I18n {
	t.Helper()

	base := []i18n.Option{
		i18n.WithLanguages("fr", "en"),
		i18n.WithTranslations("en", "validation", map[string]any{
			"required": "%{field} is required",
			"password": map[string]any{
				"min_length": "Password must be at least %{min} characters long",
			},
		}),
		i18n.WithTranslations("fr", "validation", map[string]any{
			"required": "%{field} est obligatoire",
		}),
	}

	instance, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return instance
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		instance, err := i18n.New()
		require.NoError(t, err)
		assert.Equal(t, i18n.DefaultLang, instance.DefaultLanguage())
		assert.Equal(t, []string{"en"}, instance.Languages())
	})

	t.Run("empty default language", func(t *testing.T) {
		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("empty namespace", func(t *testing.T) {
		_, err := i18n.New(i18n.WithTranslations("en", "", map[string]any{"a": "b"}))
		require.ErrorIs(t, err, i18n.ErrEmptyNamespace)
	})

	t.Run("languages keep default first", func(t *testing.T) {
		instance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithLanguages("fr", "de", "en", ""),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de", "fr"}, instance.Languages())
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	var missing []string
	instance := newCatalog(t, i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
		missing = append(missing, lang+":"+namespace+":"+key)
	}))

	assert.Equal(t, "Email is required", instance.T("en", "validation", "required", i18n.M{"field": "Email"}))
	assert.Equal(t, "Email est obligatoire", instance.T("fr", "validation", "required", i18n.M{"field": "Email"}))

	t.Run("nested keys are flattened", func(t *testing.T) {
		assert.Equal(t, "Password must be at least 8 characters long",
			instance.T("en", "validation", "password.min_length", i18n.M{"min": 8}))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "Password must be at least 8 characters long",
			instance.T("fr", "validation", "password.min_length", i18n.M{"min": 8}))
		assert.True(t, instance.Has("fr", "validation", "password.min_length"))
	})

	t.Run("missing key returns key", func(t *testing.T) {
		assert.Equal(t, "unknown", instance.T("fr", "validation", "unknown"))
		assert.False(t, instance.Has("fr", "validation", "unknown"))
		assert.Equal(t, []string{"fr:validation:unknown"}, missing)
	})

	t.Run("placeholders from several maps merge", func(t *testing.T) {
		got := instance.T("en", "validation", "required", i18n.M{"field": "A"}, i18n.M{"field": "B"})
		assert.Equal(t, "B is required", got)
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	instance := newCatalog(t)

	tr := i18n.NewTranslator(instance, "fr", "validation")
	assert.Equal(t, "fr", tr.Language())
	assert.Equal(t, "validation", tr.Namespace())
	assert.Equal(t, "Nom est obligatoire", tr.T("required", i18n.M{"field": "Nom"}))
	assert.True(t, tr.Has("required"))

	en := tr.WithLanguage("")
	assert.Equal(t, "en", en.Language())
	assert.Equal(t, "Nom is required", en.T("required", i18n.M{"field": "Nom"}))

	assert.Panics(t, func() { i18n.NewTranslator(nil, "en", "validation") })
}

func TestMatch(t *testing.T) {
	t.Parallel()

	instance := newCatalog(t)

	assert.Equal(t, "fr", instance.Match("fr-CA,fr;q=0.9"))
	assert.Equal(t, "en", instance.Match("en-US"))
	assert.Equal(t, "en", instance.Match(""))
}
