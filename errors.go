package nutrilog

import "errors"

// Errors reported by the store. They are wrapped with details, test them with errors.Is.
var (
	// ErrNotFound reports an unknown food or meal entry id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidServings reports a serving multiplier that is not a positive finite number.
	ErrInvalidServings = errors.New("invalid servings")
	// ErrInvalidGoals reports goals that fail validation, see Goals.Validate.
	ErrInvalidGoals = errors.New("invalid goals")
	// ErrInvalidMealType reports a meal slot other than breakfast, lunch, dinner or snacks.
	ErrInvalidMealType = errors.New("invalid meal type")
	// ErrInvalidFood reports a custom food that cannot be added to the catalog.
	ErrInvalidFood = errors.New("invalid food")
	// ErrMalformedState reports a persisted state that cannot be restored.
	// Open recovers from it by starting from the default state.
	ErrMalformedState = errors.New("malformed persisted state")
)
