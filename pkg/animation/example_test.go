package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/graphics"
)

// This example drives a controller frame by frame on its own scheduler with
// a fixed clock.
func ExampleAnimationController_ForwardFrom() {
	now := time.Unix(0, 0)
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer animation.SetClock(prev)

	frames := animation.NewScheduler()
	controller := animation.NewAnimationController(100 * time.Millisecond)
	controller.Resync(frames)
	defer controller.Dispose()

	controller.ForwardFrom(0)
	for i := 0; i < 4; i++ {
		now = now.Add(25 * time.Millisecond)
		frames.Step()
		fmt.Printf("%.2f %s\n", controller.Value, controller.Status())
	}

	// Output:
	// 0.25 forward
	// 0.50 forward
	// 0.75 forward
	// 1.00 completed
}

// This example shows how to listen for animation status changes.
func ExampleAnimationController_AddStatusListener() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	defer controller.Dispose()

	controller.AddStatusListener(func(status animation.AnimationStatus) {
		fmt.Println("status:", status)
	})

	controller.Forward()
	controller.Stop()
	controller.Reset()

	// Output:
	// status: forward
	// status: dismissed
}

// The curve is applied when the value is read, so swapping it does not
// disturb the controller's progress.
func ExampleCurvedAnimation() {
	controller := animation.NewAnimationController(time.Second)
	curved := &animation.CurvedAnimation{Parent: controller, Curve: animation.EaseIn}

	controller.Value = 0.5
	fmt.Printf("easeIn %.2f\n", curved.Value())

	curved.Curve = animation.EaseInOut
	fmt.Printf("easeInOut %.2f\n", curved.Value())

	// Output:
	// easeIn 0.32
	// easeInOut 0.50
}

// This example shows how to interpolate between two sizes.
func ExampleTweenSize() {
	sizes := animation.TweenSize(
		graphics.Size{Width: 100, Height: 40},
		graphics.Size{Width: 200, Height: 80},
	)

	fmt.Println(sizes.Evaluate(0))
	fmt.Println(sizes.Evaluate(0.5))
	fmt.Println(sizes.Evaluate(1))

	// Output:
	// 100x40
	// 150x60
	// 200x80
}

// Named curves are looked up the way scenario files refer to them.
func ExampleCurveByName() {
	curve, ok := animation.CurveByName("fastOutSlowIn")
	fmt.Println(ok)
	fmt.Printf("%.2f %.2f %.2f\n", curve(0), curve(0.5), curve(1))

	_, ok = animation.CurveByName("bounce")
	fmt.Println(ok)

	// Output:
	// true
	// 0.00 0.78 1.00
	// false
}
