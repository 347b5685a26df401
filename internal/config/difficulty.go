package config

import "fmt"

// DifficultyPreset is a named difficulty that maps to one of the five
// generation seeds a cave carries.
type DifficultyPreset string

const (
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHarder  DifficultyPreset = "harder"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExpert  DifficultyPreset = "expert"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// LevelForPreset returns the 1..5 difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyNormal:
		return 1, nil
	case DifficultyHarder:
		return 2, nil
	case DifficultyHard:
		return 3, nil
	case DifficultyExpert:
		return 4, nil
	case DifficultyExtreme:
		return 5, nil
	}
	return 0, fmt.Errorf("config: unknown difficulty preset %q", preset)
}

// ParseDifficulty accepts either a preset name or a literal level
// ("1".."5") and returns the level.
func ParseDifficulty(s string) (int, error) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		return int(s[0] - '0'), nil
	}
	return LevelForPreset(DifficultyPreset(s))
}
