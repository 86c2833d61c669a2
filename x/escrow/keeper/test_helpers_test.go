package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// findEvent returns the first emitted event of the given type.
func findEvent(ctx sdk.Context, eventType string) (sdk.Event, bool) {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			return ev, true
		}
	}
	return sdk.Event{}, false
}

// eventAttribute returns the value of an attribute on an event.
func eventAttribute(t testing.TB, ev sdk.Event, key string) string {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("event %s has no attribute %s", ev.Type, key)
	return ""
}
