package hooks_test

import (
	"fmt"

	"github.com/go-drift/hooks/pkg/core"
	"github.com/go-drift/hooks/pkg/hooks"
)

// This example shows how an async tracker moves through its lifecycle:
// loading while the operation runs, success once it settles.
func ExampleUseAsync() {
	base := &core.StateBase{}

	// Create the tracker without running it immediately
	tracker := hooks.UseAsync(base, func() (string, error) {
		return "profile loaded", nil
	}, hooks.WithImmediate(false))

	fmt.Println("before:", tracker.Status())

	// Execute returns a channel closed once the settlement is applied
	<-tracker.Execute()

	data, _ := tracker.Data()
	fmt.Println("after:", tracker.Status(), "-", data)

	// Output:
	// before: idle
	// after: success - profile loaded
}

// This example shows how a failed operation surfaces through state rather
// than a returned error.
func ExampleAsyncController_Err() {
	base := &core.StateBase{}

	tracker := hooks.UseAsync(base, func() (int, error) {
		return 0, fmt.Errorf("connection refused")
	}, hooks.WithImmediate(false))

	<-tracker.Execute()

	fmt.Println(tracker.Status())
	fmt.Println(tracker.Err())

	// Output:
	// error
	// async.Execute [operation-failed]: connection refused
}

// This example shows the toggle hook driving a boolean cell.
func ExampleUseToggle() {
	base := &core.StateBase{}

	expanded := hooks.UseToggle(base, false)
	expanded.Toggle()
	fmt.Println(expanded.Value())

	expanded.Toggle()
	fmt.Println(expanded.Value())

	// Output:
	// true
	// false
}
