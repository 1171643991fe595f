package assets

import (
	i18n "github.com/goliatone/go-i18n"
)

// Translations returns the default catalogs for project item labels.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"project.type.project":   "Project",
			"project.type.bug":       "Bug",
			"project.type.task":      "Task",
			"project.type.milestone": "Milestone",
			"project.type.risk":      "Risk",
			"project.type.message":   "Message",
			"project.type.page":      "Page",
			"project.type.client":    "Client",
			"project.type.component": "Component",
			"project.type.version":   "Version",
			"project.type.role":      "Role",
			"project.type.member":    "Member",
		}),
		"es": newCatalog("es", map[string]string{
			"project.type.project":   "Proyecto",
			"project.type.bug":       "Error",
			"project.type.task":      "Tarea",
			"project.type.milestone": "Hito",
			"project.type.risk":      "Riesgo",
			"project.type.message":   "Mensaje",
			"project.type.page":      "Página",
			"project.type.client":    "Cliente",
			"project.type.component": "Componente",
			"project.type.version":   "Versión",
			"project.type.role":      "Rol",
			"project.type.member":    "Miembro",
		}),
	}
}

// NewTranslator returns a translator over Translations.
func NewTranslator(defaultLocale string) (i18n.Translator, error) {
	store := i18n.NewStaticStore(Translations())
	translator, err := i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(defaultLocale))
	if err != nil {
		return nil, err
	}
	return translator, nil
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
