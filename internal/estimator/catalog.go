package estimator

import (
	"encoding/json"
	"estimator/pkg/domain"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadMachineProfiles reads a machine profile catalog from a JSON file that
// may contain comments and trailing commas. An empty path returns the
// built-in profiles.
func LoadMachineProfiles(path string) ([]domain.MachineProfile, error) {
	if path == "" {
		return domain.DefaultMachineProfiles(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read machine profiles: %w", err)
	}

	return ParseMachineProfiles(raw)
}

// ParseMachineProfiles decodes and validates a JSONC machine profile catalog.
func ParseMachineProfiles(raw []byte) ([]domain.MachineProfile, error) {
	var profiles []domain.MachineProfile
	if err := json.Unmarshal(jsonc.ToJSON(raw), &profiles); err != nil {
		return nil, fmt.Errorf("could not decode machine profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("machine profile catalog is empty")
	}

	seen := make(map[string]bool, len(profiles))
	for i, p := range profiles {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("machine profile %d has no id", i)
		case seen[p.ID]:
			return nil, fmt.Errorf("duplicate machine profile %q", p.ID)
		}
		seen[p.ID] = true

		switch p.Process {
		case domain.ProcessTurning, domain.ProcessMilling, domain.ProcessHybrid:
		default:
			return nil, fmt.Errorf("machine profile %q has unknown process %q", p.ID, p.Process)
		}
		switch p.StockStrategy {
		case domain.StockAuto, domain.StockRoundBar, domain.StockRectangBlock:
		default:
			return nil, fmt.Errorf("machine profile %q has unknown stock strategy %q", p.ID, p.StockStrategy)
		}
		if p.MaxXMM <= 0 || p.MaxYMM <= 0 || p.MaxZMM <= 0 {
			return nil, fmt.Errorf("machine profile %q has a non-positive envelope", p.ID)
		}
	}

	return profiles, nil
}
