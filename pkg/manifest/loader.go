package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadSuite reads a YAML suite file and returns the parsed suite. Template
// variables like {{date}} and {{var_name}} are interpolated using the
// suite's own vars block and the provided overrides.
func LoadSuite(path string, params map[string]string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read suite %s: %w", path, err)
	}
	return ParseSuite(data, params)
}

// ParseSuite parses YAML data into a Suite with variable interpolation.
func ParseSuite(data []byte, params map[string]string) (Suite, error) {
	// First pass: parse to get the suite's var defaults.
	var raw suiteDoc
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Suite{}, fmt.Errorf("parse suite: %w", err)
	}

	vars := buildVarMap(raw.Vars, params)
	interpolated := interpolateVars(string(data), vars)

	// Second pass: parse the interpolated YAML.
	var doc suiteDoc
	if err := yaml.Unmarshal([]byte(interpolated), &doc); err != nil {
		return Suite{}, fmt.Errorf("parse interpolated suite: %w", err)
	}
	return decodeSuite(doc)
}

// buildVarMap merges built-in variables, suite var defaults and runtime
// overrides, later sources winning.
func buildVarMap(defaults, overrides map[string]string) map[string]string {
	vars := make(map[string]string)

	now := time.Now()
	vars["date"] = now.Format("2006-01-02")
	vars["datetime"] = now.Format("2006-01-02T15:04:05")
	vars["hostname"], _ = os.Hostname()

	for k, v := range defaults {
		vars[k] = v
	}
	for k, v := range overrides {
		vars[k] = v
	}
	return vars
}

// templatePattern matches {{var_name}} patterns.
var templatePattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// interpolateVars replaces {{var_name}} patterns with values from the var
// map, leaving unresolved names in place.
func interpolateVars(s string, vars map[string]string) string {
	return templatePattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")
		if val, ok := vars[varName]; ok {
			return val
		}
		return match
	})
}
