package catalog

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Entry is one displayable catalog record. Entries are created once when a
// catalog is decoded and are never mutated afterwards.
type Entry struct {
	ID           string    `yaml:"id" json:"id"`
	Name         string    `yaml:"name" json:"name"`
	Designation  string    `yaml:"designation" json:"designation"`
	Year         string    `yaml:"year" json:"year"`
	Image        string    `yaml:"image" json:"image"`
	ProfileImage string    `yaml:"profile_image" json:"profile_image"`
	Description  string    `yaml:"description" json:"description"`
	Specs        SpecSheet `yaml:"specs" json:"specs"`
	Ratings      Ratings   `yaml:"ratings" json:"ratings"`
	Profile      Profile   `yaml:"profile" json:"profile"`
}

// Profile is the secondary record shown on the second tab of a card.
type Profile struct {
	Nation        string   `yaml:"nation" json:"nation"`
	Rank          string   `yaml:"rank" json:"rank"`
	BattleRating  string   `yaml:"battle_rating" json:"battle_rating"`
	Role          string   `yaml:"role" json:"role"`
	Armament      []string `yaml:"armament" json:"armament"`
	Advantages    []string `yaml:"advantages" json:"advantages"`
	Disadvantages []string `yaml:"disadvantages" json:"disadvantages"`
}

// Clone returns a deep copy so callers cannot alias catalog storage.
func (e Entry) Clone() Entry {
	out := e
	out.Specs = e.Specs.Clone()
	out.Profile.Armament = slices.Clone(e.Profile.Armament)
	out.Profile.Advantages = slices.Clone(e.Profile.Advantages)
	out.Profile.Disadvantages = slices.Clone(e.Profile.Disadvantages)
	return out
}

// Rating keys in display order.
const (
	RatingSpeed           = "speed"
	RatingClimb           = "climb"
	RatingManeuverability = "maneuverability"
	RatingArmament        = "armament"
)

// RatingCount is the number of scores every entry carries.
const RatingCount = 4

// Rating is a single labelled score in [0,100].
type Rating struct {
	Key   string
	Label string
	Value int
}

// Ratings is the fixed set of four scores for an entry.
type Ratings struct {
	Speed           int `yaml:"speed" json:"speed"`
	Climb           int `yaml:"climb" json:"climb"`
	Maneuverability int `yaml:"maneuverability" json:"maneuverability"`
	Armament        int `yaml:"armament" json:"armament"`
}

// ratingLabels maps rating keys to their bar labels.
var ratingLabels = map[string]string{
	RatingSpeed:           "Top Speed",
	RatingClimb:           "Climb Rate",
	RatingManeuverability: "Maneuverability",
	RatingArmament:        "Armament",
}

// RatingKeys returns the rating keys in display order.
func RatingKeys() []string {
	return []string{RatingSpeed, RatingClimb, RatingManeuverability, RatingArmament}
}

// List returns the four ratings in display order.
func (r Ratings) List() []Rating {
	values := map[string]int{
		RatingSpeed:           r.Speed,
		RatingClimb:           r.Climb,
		RatingManeuverability: r.Maneuverability,
		RatingArmament:        r.Armament,
	}
	out := make([]Rating, 0, RatingCount)
	for _, key := range RatingKeys() {
		out = append(out, Rating{Key: key, Label: ratingLabels[key], Value: values[key]})
	}
	return out
}

// UnmarshalYAML requires exactly the four known rating keys with integer values.
func (r *Ratings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: ratings must be a mapping", node.Line)
	}

	seen := make(map[string]int, RatingCount)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if _, ok := ratingLabels[key.Value]; !ok {
			return fmt.Errorf("line %d: unknown rating %q", key.Line, key.Value)
		}
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: duplicate rating %q", key.Line, key.Value)
		}
		var v int
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("line %d: rating %q: %w", val.Line, key.Value, err)
		}
		seen[key.Value] = v
	}

	for _, key := range RatingKeys() {
		if _, ok := seen[key]; !ok {
			return fmt.Errorf("line %d: missing rating %q", node.Line, key)
		}
	}

	r.Speed = seen[RatingSpeed]
	r.Climb = seen[RatingClimb]
	r.Maneuverability = seen[RatingManeuverability]
	r.Armament = seen[RatingArmament]
	return nil
}
