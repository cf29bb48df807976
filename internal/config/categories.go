package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule assigns Category to a commit whose file list contains Match.
// An empty Match matches everything.
type Rule struct {
	Match    string `yaml:"match"`
	Category string `yaml:"category"`
}

// CategoryRules maps a repository name to its ordered rules.
type CategoryRules map[string][]Rule

type categoriesFile struct {
	Repositories CategoryRules `yaml:"repositories"`
}

// DefaultCategoryRules is used when no categories file exists.
func DefaultCategoryRules() CategoryRules {
	return CategoryRules{
		"joker":      {{Match: "", Category: "A2"}},
		"kolibrifx":  {{Match: "releng", Category: "A2"}, {Match: "TimeNavigator", Category: "A2"}, {Match: "Plot", Category: "A2"}, {Match: "", Category: "IDE"}},
		"snowcap":    {{Match: "releng", Category: "A2"}, {Match: "", Category: "IDE"}},
		"nectar":     {{Match: "", Category: "Kompilator"}},
		"quantility": {{Match: "", Category: "Kompilator"}},
		"joker-wiki": {{Match: "", Category: "A2"}},
	}
}

// LoadCategoryRules reads a YAML rules file of the form
//
//	repositories:
//	  myrepo:
//	    - match: docs/
//	      category: Docs
//	    - match: ""
//	      category: Code
//
// A missing file yields DefaultCategoryRules.
func LoadCategoryRules(path string) (CategoryRules, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCategoryRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	if f.Repositories == nil {
		f.Repositories = CategoryRules{}
	}
	return f.Repositories, nil
}

// SaveCategoryRules writes rules to path in the format read by LoadCategoryRules.
func SaveCategoryRules(path string, rules CategoryRules) error {
	data, err := yaml.Marshal(categoriesFile{Repositories: rules})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
