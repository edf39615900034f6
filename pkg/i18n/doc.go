// Package i18n translates message keys into localized text and localizes
// validator.ValidationErrors by their TranslationKey.
//
// Translations are nested maps keyed first by language code and then by
// dot-separated message keys ("validation.required"). They are loaded by a
// TranslationAdapter: MapAdapter for in-memory data, FileAdapter for a single
// JSON or YAML file and FSAdapter for a directory inside any fs.FS, including
// an embed.FS. Templates use named placeholders in the form %{name}.
//
// # Usage
//
//	tr, err := i18n.NewValidationTranslator(ctx)
//	if err != nil {
//	    return err
//	}
//
//	if _, err := dto.Parse[dto.User](body); err != nil {
//	    localized := tr.LocalizeError("es", err)
//	    ...
//	}
//
// NewValidationTranslator ships catalogs for every translation key produced
// by the validator package. A message whose template references a value the
// error does not carry keeps its original English text.
package i18n
