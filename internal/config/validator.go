package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	// Use validator to validate General config
	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	// A template format needs an actual template to render
	if c.General.OutputFormat == OutputFormatTemplate && c.General.OutputTemplate == "" {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general.output_template",
			Message:   "required when output_format is \"template\"",
		})
	}

	if c.API != nil {
		if err := validate.Struct(c.API); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "api", "")...)
		}
	}

	if c.Index != nil {
		if err := validate.Struct(c.Index); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "index", "")...)
		}
	}

	// Validate watch targets
	validationErrors = append(validationErrors, c.validateWatches()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateWatches() ValidationErrors {
	var validationErrors ValidationErrors

	// Track duplicates
	seenPaths := make(map[string]bool)

	for i, watch := range c.Watches {
		itemName := watch.Path
		if itemName == "" {
			itemName = fmt.Sprintf("watch[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(watch); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("watch.%d", i), itemName)...)
		}

		if watch.Path == "" {
			continue
		}

		// Check duplicate watch path
		absPath := watch.GetAbsolutePath(c)
		if seenPaths[absPath] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "path",
				Message:   fmt.Sprintf("duplicate watch path: %s", absPath),
			})
		}
		seenPaths[absPath] = true

		// Validate path exists
		if _, err := os.Stat(absPath); errors.Is(err, os.ErrNotExist) {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "path",
				Message:   fmt.Sprintf("path does not exist: %s", absPath),
			})
		}

		// Writing to the index requires an index to be configured
		if watch.UpdateIndex && !c.HasIndex() {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "update_index",
				Message:   "requires an [index] section with a directory",
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
