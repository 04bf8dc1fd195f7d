package nutrilog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed seed_foods.yaml
var seedYAML []byte

// seedFood is the yaml layout of a seed food.
type seedFood struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Calories    float64 `yaml:"calories"`
	Protein     float64 `yaml:"protein"`
	Carbs       float64 `yaml:"carbs"`
	Fat         float64 `yaml:"fat"`
	Serving     string  `yaml:"serving"`
	ServingSize float64 `yaml:"servingSize"`
}

var seedFoods = sync.OnceValues(func() ([]Food, error) { return decodeSeed(seedYAML) })

// decodeSeed decodes and validates a yaml list of foods.
func decodeSeed(data []byte) ([]Food, error) {
	var raw []seedFood
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode seed foods: %w", err)
	}
	foods := make([]Food, 0, len(raw))
	ids := make(map[string]bool, len(raw))
	for _, r := range raw {
		if r.ID == "" || ids[r.ID] {
			return nil, fmt.Errorf("seed food %q: missing or duplicate id %q", r.Name, r.ID)
		}
		ids[r.ID] = true
		f := Food{
			ID:          r.ID,
			Name:        r.Name,
			Nutrients:   N(r.Calories, r.Protein, r.Carbs, r.Fat),
			ServingUnit: r.Serving,
			ServingSize: Q(r.ServingSize),
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("seed food %q: %w", r.ID, err)
		}
		foods = append(foods, f)
	}
	return foods, nil
}

// SeedFoods returns the built-in catalog.
func SeedFoods() ([]Food, error) {
	foods, err := seedFoods()
	return slices.Clone(foods), err
}
