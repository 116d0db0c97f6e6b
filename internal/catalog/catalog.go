// Package catalog загружает исходный каталог занятий, с которым стартует сервис.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"activity-signup-service/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed activities.yaml
var embeddedCatalog []byte

type activityEntry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants *int     `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Load возвращает встроенный каталог в порядке объявления.
func Load() ([]*domain.Activity, error) {
	return Parse(embeddedCatalog)
}

// LoadFile читает каталог из YAML-файла вместо встроенного.
func LoadFile(path string) ([]*domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и проверяет каталог.
func Parse(data []byte) ([]*domain.Activity, error) {
	var entries []activityEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCatalog, err)
	}

	seen := make(map[string]struct{}, len(entries))
	activities := make([]*domain.Activity, 0, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", domain.ErrMalformedCatalog, i)
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate activity %q", domain.ErrMalformedCatalog, entry.Name)
		}
		seen[entry.Name] = struct{}{}

		if entry.MaxParticipants == nil || *entry.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: activity %q needs a positive max_participants", domain.ErrMalformedCatalog, entry.Name)
		}

		activity := &domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: *entry.MaxParticipants,
			Participants:    make([]string, 0, len(entry.Participants)),
		}
		for _, email := range entry.Participants {
			if activity.HasParticipant(email) {
				return nil, fmt.Errorf("%w: %q listed twice in %q", domain.ErrMalformedCatalog, email, entry.Name)
			}
			activity.Participants = append(activity.Participants, email)
		}
		if len(activity.Participants) > activity.MaxParticipants {
			return nil, fmt.Errorf("%w: activity %q is over capacity", domain.ErrMalformedCatalog, entry.Name)
		}

		activities = append(activities, activity)
	}

	return activities, nil
}
