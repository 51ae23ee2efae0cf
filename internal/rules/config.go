package rules

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-engine/internal/schemas"
)

// ruleFile is the on-disk shape of a rule set.
type ruleFile struct {
	Rules []Rule `json:"rules"`
}

// LoadRules reads a JSON rule set, validates it against the automation
// rule schema, and returns the rules. Any schema or structural error
// fails fast; a bad rule file is configuration the operator must fix.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	schemaPath := schemas.ResolvePath("schemas/automation_rules.schema.json")
	if schemaPath == "" {
		return nil, fmt.Errorf("automation rule schema not found")
	}
	if err := schemas.ValidateAgainstFile(schemaPath, data); err != nil {
		return nil, fmt.Errorf("rule file %s failed schema validation: %w", path, err)
	}

	var file ruleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	for _, rule := range file.Rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule file %s: %w", path, err)
		}
	}
	return file.Rules, nil
}
