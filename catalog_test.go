package nutrilog

import (
	"errors"
	"slices"
	"testing"
)

func names(foods []Food) []string {
	var n []string
	for _, f := range foods {
		n = append(n, f.Name)
	}
	return n
}

func TestCatalog_Search(t *testing.T) {
	c := NewCatalog(
		Food{ID: "1", Name: "Greek Yogurt"},
		Food{ID: "2", Name: "Yogurt Drink"},
		Food{ID: "3", Name: "Apple"},
	)
	testCases := []struct {
		query string
		want  []string
	}{
		{"yog", []string{"Greek Yogurt", "Yogurt Drink"}},
		{"YOG", []string{"Greek Yogurt", "Yogurt Drink"}},
		{"  gurt ", []string{"Greek Yogurt", "Yogurt Drink"}},
		{"ek yo", []string{"Greek Yogurt"}},
		{"zzz", nil},
		{"", []string{"Greek Yogurt", "Yogurt Drink", "Apple"}},
		{"   ", []string{"Greek Yogurt", "Yogurt Drink", "Apple"}},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			if got := names(c.Search(tc.query)); !slices.Equal(got, tc.want) {
				t.Errorf("Search(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestCatalog_SearchReturnsACopy(t *testing.T) {
	c := NewCatalog(Food{ID: "1", Name: "Apple"})
	c.Search("")[0].Name = "Pear"
	if f, _ := c.Food("1"); f.Name != "Apple" {
		t.Errorf("catalog was modified through Search() result: %v", f.Name)
	}
}

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog(Food{ID: "1", Name: "Apple"})

	added := c.Add(Food{Name: "Pancake"})
	if added.ID == "" || !added.IsCustom {
		t.Errorf("Add() = %+v, want a custom food with an id", added)
	}
	if got, err := c.Food(added.ID); err != nil || got.Name != "Pancake" {
		t.Errorf("Food(%q) = %v, %v, want Pancake", added.ID, got, err)
	}

	// colliding ids are replaced, names are not de-duplicated.
	again := c.Add(Food{ID: "1", Name: "Apple"})
	if again.ID == "1" {
		t.Error("Add() kept an id already in use")
	}
	if got := names(c.Search("apple")); len(got) != 2 {
		t.Errorf("Search(apple) = %v, want two apples", got)
	}

	// custom foods come after seed foods in insertion order.
	kept := c.Add(Food{ID: "my-id", Name: "Waffle"})
	if kept.ID != "my-id" {
		t.Errorf("Add() id = %q, want my-id", kept.ID)
	}
	if got, want := names(c.Search("")), []string{"Apple", "Pancake", "Apple", "Waffle"}; !slices.Equal(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
	if got := len(c.Custom()); got != 3 {
		t.Errorf("len(Custom()) = %d, want 3", got)
	}
}

func TestCatalog_AddIdsAreUnique(t *testing.T) {
	c := NewCatalog()
	seen := make(map[string]bool)
	for range 1000 {
		f := c.Add(Food{Name: "Same"})
		if seen[f.ID] {
			t.Fatalf("duplicate id %q", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestCatalog_FoodNotFound(t *testing.T) {
	c := NewCatalog(Food{ID: "1", Name: "Apple"})
	if _, err := c.Food("2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Food(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestNewCatalogIgnoresDuplicateSeeds(t *testing.T) {
	c := NewCatalog(Food{ID: "1", Name: "Apple"}, Food{ID: "1", Name: "Pear"})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if f, _ := c.Food("1"); f.Name != "Apple" {
		t.Errorf("Food(1) = %v, want Apple", f.Name)
	}
}

func TestFood_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		food    Food
		wantErr bool
	}{
		{"valid", Food{Name: "Toast", Nutrients: N(70, 3, 12, 1), ServingSize: Q(1)}, false},
		{"zero nutrients", Food{Name: "Water", ServingSize: Q(250)}, false},
		{"empty name", Food{Name: "  ", ServingSize: Q(1)}, true},
		{"negative fat", Food{Name: "Toast", Nutrients: N(70, 3, 12, -1), ServingSize: Q(1)}, true},
		{"zero serving size", Food{Name: "Toast"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.food.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFood) {
				t.Errorf("Validate() error = %v, want ErrInvalidFood", err)
			}
		})
	}
}
