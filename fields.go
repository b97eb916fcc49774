package beacon

import "github.com/zoobzio/capitan"

// Field keys for Repository and resolution events.
var (
	// KeyState is the current state of the Repository.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyStage is the refresh stage that failed: "load" or "parse".
	KeyStage = capitan.NewStringKey("stage")

	// KeyInterval is the configured refresh interval.
	KeyInterval = capitan.NewDurationKey("interval")

	// KeyConfigurations is the number of configurations in a published
	// snapshot.
	KeyConfigurations = capitan.NewIntKey("configurations")

	// KeyAlias is the configuration key a resolution addressed.
	KeyAlias = capitan.NewStringKey("alias")

	// KeyExpectedKind is the kind the caller expected.
	KeyExpectedKind = capitan.NewStringKey("expected_kind")

	// KeyActualKind is the kind the resolved value actually had.
	KeyActualKind = capitan.NewStringKey("actual_kind")
)
