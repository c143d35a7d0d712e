package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseApp loads an application document from disk, validates it, and returns
// the resulting model. JSON documents are recognised by extension; everything
// else is treated as YAML.
func ParseApp(path string) (*App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lowkiterrors.NewParseError(path, 0, err)
	}

	var app App
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &app); err != nil {
			return nil, lowkiterrors.NewParseError(path, 0, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &app); err != nil {
			return nil, lowkiterrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := ValidateApp(&app); err != nil {
		return nil, err
	}

	return &app, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
