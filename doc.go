// Package nutrilog keeps a personal nutrition log. It is local-first: the
// whole state lives in a single JSON document stored under one key of a
// Storage.
//
// The core functionalities include:
//   - Food Catalog: a seed catalog of common foods, extended with custom
//     foods, searchable by name.
//   - Meal Ledger: the servings of foods eaten, by day and by meal.
//   - Goals: daily targets for calories, protein, carbs and fat.
//   - Aggregation: daily summaries, totals over several days and the
//     progress towards the goals, computed on decimals so that totals are exact.
//   - Persistence: every mutation of a Store is written to its Storage.
//
// This package serves as the foundational logic for the `nutri` command-line
// tool.
package nutrilog
