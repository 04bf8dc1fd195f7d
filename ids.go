package nutrilog

import "github.com/google/uuid"

// Ids are random uuids, unique regardless of how many are created in the same instant.

func newEntryID() string { return uuid.NewString() }

func newFoodID() string { return "custom-" + uuid.NewString() }
