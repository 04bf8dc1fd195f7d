package nutrilog

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Catalog is the list of known foods: the seed foods first, then the custom
// foods in insertion order. Foods are never edited nor removed.
type Catalog struct {
	foods []Food
	index map[string]int // index foods by id
	newID func() string
}

// NewCatalog creates a catalog from seed foods. Seeds with an id already
// present are ignored.
func NewCatalog(seed ...Food) *Catalog {
	c := &Catalog{
		foods: make([]Food, 0, len(seed)),
		index: make(map[string]int, len(seed)),
		newID: newFoodID,
	}
	for _, f := range seed {
		c.insert(f)
	}
	return c
}

// insert appends f keeping its id, it reports false if the id is already used.
func (c *Catalog) insert(f Food) bool {
	if _, exists := c.index[f.ID]; exists {
		return false
	}
	c.index[f.ID] = len(c.foods)
	c.foods = append(c.foods, f)
	return true
}

// Add appends a custom food and returns it as stored. The food is always
// marked custom, and receives a fresh id when its id is empty or already
// used. Foods are not de-duplicated by name.
func (c *Catalog) Add(f Food) Food {
	f.IsCustom = true
	if _, exists := c.index[f.ID]; f.ID == "" || exists {
		f.ID = c.newID()
	}
	c.insert(f)
	return f
}

// Food returns the food with that id.
func (c *Catalog) Food(id string) (Food, error) {
	i, ok := c.index[id]
	if !ok {
		return Food{}, fmt.Errorf("food %q: %w", id, ErrNotFound)
	}
	return c.foods[i], nil
}

// Search returns the foods whose name contains the trimmed query, ignoring
// case. An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []Food {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return slices.Clone(c.foods)
	}
	found := make([]Food, 0)
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.Name), term) {
			found = append(found, f)
		}
	}
	return found
}

// Foods returns an iterator over the catalog in order.
func (c *Catalog) Foods() iter.Seq[Food] {
	return func(yield func(Food) bool) {
		for _, f := range c.foods {
			if !yield(f) {
				return
			}
		}
	}
}

// Custom returns the user added foods in insertion order.
func (c *Catalog) Custom() []Food {
	var custom []Food
	for _, f := range c.foods {
		if f.IsCustom {
			custom = append(custom, f)
		}
	}
	return custom
}

// Len returns the number of foods.
func (c *Catalog) Len() int { return len(c.foods) }
