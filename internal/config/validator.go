package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/accentgen/internal/variant"
	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return accenterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	// Sources sharing a directory name would write the same variant tree.
	bases := make(map[string]int, len(cfg.Sources))
	for i, source := range cfg.Sources {
		base := filepath.Base(filepath.Clean(source))
		if j, exists := bases[base]; exists {
			return accenterrors.NewValidationError(
				fmt.Sprintf("sources[%d]", i),
				fmt.Sprintf("source %q has the same directory name as %q", source, cfg.Sources[j]),
				nil,
			)
		}
		bases[base] = i
	}

	// Names that differ only in case map to the same variant directory.
	seen := make(map[string]int, len(cfg.Palettes))
	for i, entry := range cfg.Palettes {
		canonical := variant.Canonical(entry.Name)
		if j, exists := seen[canonical]; exists {
			return accenterrors.NewValidationError(
				fieldForPalette(i, "name"),
				fmt.Sprintf("palette %q collides with %q as variant %q", entry.Name, cfg.Palettes[j].Name, canonical),
				nil,
			)
		}
		seen[canonical] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into accentgen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return accenterrors.NewValidationError(field, msg, err)
	}

	return accenterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPalette(index int, field string) string {
	return fmt.Sprintf("palettes[%d].%s", index, field)
}
