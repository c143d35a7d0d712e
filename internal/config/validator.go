package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	kebabNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	varNamePattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	pagePathPattern  = regexp.MustCompile(`^/(?:[a-z0-9-]+(?:/[a-z0-9-]+)*)?$`)
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("kebab_name", func(fl validator.FieldLevel) bool {
			return kebabNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("var_name", func(fl validator.FieldLevel) bool {
			return varNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("page_path", func(fl validator.FieldLevel) bool {
			return pagePathPattern.MatchString(fl.Field().String())
		})

		// Hex values must be well-formed; anything else (rgb(), var(), named
		// colours) passes through to the stylesheet untouched.
		_ = v.RegisterValidation("theme_color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.HasPrefix(value, "#") {
				return hexColorPattern.MatchString(value)
			}
			return value != ""
		})

		validateInst = v
	})

	return validateInst
}

// ValidateApp performs schema and cross-field validation on an application
// document.
func ValidateApp(app *App) error {
	if app == nil {
		return lowkiterrors.NewValidationError("app", "application document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(app); err != nil {
		return convertValidationError(err)
	}

	blockIndex := make(map[string]int, len(app.Blocks))
	for i, block := range app.Blocks {
		if _, exists := blockIndex[block.Name]; exists {
			return lowkiterrors.NewValidationError(fmt.Sprintf("blocks[%d].name", i), fmt.Sprintf("duplicate block name %q", block.Name), nil)
		}
		if block.Component.Type == "" {
			return lowkiterrors.NewValidationError(fmt.Sprintf("blocks[%d].component", i), "component type is required", nil)
		}
		blockIndex[block.Name] = i
	}

	pagePaths := make(map[string]int, len(app.Pages))
	for i, page := range app.Pages {
		if _, exists := pagePaths[page.Path]; exists {
			return lowkiterrors.NewValidationError(fmt.Sprintf("pages[%d].path", i), fmt.Sprintf("duplicate page path %q", page.Path), nil)
		}
		pagePaths[page.Path] = i

		for j, section := range page.Sections {
			if err := validateSection(section, i, j, blockIndex); err != nil {
				return err
			}
		}
	}

	if app.Languages != nil {
		if err := validateLanguages(app.Languages); err != nil {
			return err
		}
	}

	return nil
}

func validateSection(section Section, pageIndex, sectionIndex int, blockIndex map[string]int) error {
	field := fmt.Sprintf("pages[%d].sections[%d]", pageIndex, sectionIndex)

	if section.IsRef() {
		if section.Ref != "" && section.Block != "" {
			return lowkiterrors.NewValidationError(field, "section uses both $ref and block reference forms", nil)
		}
		name := section.BlockName()
		if _, ok := blockIndex[name]; !ok {
			return lowkiterrors.NewValidationError(field, fmt.Sprintf("references unknown block %q", name), nil)
		}
		return nil
	}

	if section.Component == nil || section.Component.Type == "" {
		return lowkiterrors.NewValidationError(field, "inline section requires a component type", nil)
	}

	return nil
}

func validateLanguages(langs *Languages) error {
	v := validatorInstance()
	if err := v.Struct(langs); err != nil {
		return convertValidationError(err)
	}

	supported := make(map[string]struct{}, len(langs.Supported))
	for _, code := range langs.Supported {
		supported[code] = struct{}{}
	}
	if _, ok := supported[langs.Default]; !ok {
		return lowkiterrors.NewValidationError("languages.default", fmt.Sprintf("default language %q is not in supported list", langs.Default), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lowkiterrors.NewValidationError(field, msg, err)
	}

	return lowkiterrors.NewValidationError("app", err.Error(), err)
}

func documentFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
