package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// GetRules loads the rule tables from a JSON file. An empty path
// returns the built-in defaults.
func GetRules(rulesConfigPath string) (Rules, error) {
	if rulesConfigPath == "" {
		return DefaultRules(), nil
	}

	file, err := os.Open(rulesConfigPath)
	if err != nil {
		return Rules{}, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Rules{}, err
	}

	var rules Rules

	if err := json.Unmarshal(bytes, &rules); err != nil {
		return Rules{}, err
	}

	if err := validate(rules); err != nil {
		return Rules{}, err
	}

	return rules, nil
}

func validate(r Rules) error {
	if len(r.Medications) == 0 {
		return fmt.Errorf("rules config has no medication table")
	}

	for emotion, tiers := range r.Medications {
		for tier := range tiers {
			switch tier {
			case "low", "medium", "high":
			default:
				return fmt.Errorf("medication table [%s] has unknown tier [%s]", emotion, tier)
			}
		}
	}

	return nil
}
