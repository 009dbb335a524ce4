package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/accentgen/internal/color"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	metadataKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("accent_hex", func(fl validator.FieldLevel) bool {
			_, err := color.Decode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("variant_name", func(fl validator.FieldLevel) bool {
			return variant.ValidateName(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("metadata_key", func(fl validator.FieldLevel) bool {
			return metadataKeyPattern.MatchString(fl.Field().String())
		})

		// Layout paths are joined onto each tree and must stay inside it.
		_ = v.RegisterValidation("rel_path", func(fl validator.FieldLevel) bool {
			return isContainedPath(fl.Field().String())
		})

		// A source is either a directory name under the theme root or an absolute path.
		_ = v.RegisterValidation("tree_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.TrimSpace(value) == "" || strings.Contains(value, "\x00") {
				return false
			}
			return filepath.IsAbs(value) || isContainedPath(value)
		})

		validateInst = v
	})

	return validateInst
}

func isContainedPath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") || filepath.IsAbs(path) {
		return false
	}
	clean := filepath.Clean(path)
	return clean != "." && clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
