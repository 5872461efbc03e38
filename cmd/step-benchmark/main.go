package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/veylan/strafe/physics"
	"github.com/veylan/strafe/vmath"
)

var (
	bodyCount = flag.Int("bodies", 64, "number of bodies in the world")
	stepCount = flag.Int("steps", 10000, "number of steps to run")
	dt        = flag.Float64("dt", 1.0/60.0, "step delta in seconds")
	arena     = flag.Float64("arena", 100, "side length of the square spawn area")
	seed      = flag.Int64("seed", 1, "rng seed for reproducible runs")
)

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	w := physics.NewWorld()

	side := *arena
	for i := 0; i < *bodyCount; i++ {
		d := physics.DefaultDescriptor()
		d.Position = vmath.V(rng.Float64()*side, rng.Float64()*side)
		d.Velocity = vmath.FromAngle(rng.Float64()*2*3.14159265, 1+rng.Float64()*9)
		d.Shape = physics.Circle(0.5 + rng.Float64())
		w.Add(d)
	}

	var contacts uint64
	w.SetContactHandler(func(physics.Contact) { contacts++ })

	start := time.Now()
	for i := 0; i < *stepCount; i++ {
		w.Step(*dt)
	}
	elapsed := time.Since(start)

	pairsPerStep := *bodyCount * (*bodyCount - 1) / 2
	totalPairs := uint64(pairsPerStep) * uint64(*stepCount)

	fmt.Printf("bodies:        %d\n", *bodyCount)
	fmt.Printf("steps:         %d (dt=%g)\n", *stepCount, *dt)
	fmt.Printf("elapsed:       %v\n", elapsed)
	fmt.Printf("per step:      %v\n", elapsed/time.Duration(*stepCount))
	fmt.Printf("steps/sec:     %.0f\n", float64(*stepCount)/elapsed.Seconds())
	fmt.Printf("pair checks:   %d (%.1fM/sec)\n", totalPairs,
		float64(totalPairs)/elapsed.Seconds()/1e6)
	fmt.Printf("contacts:      %d\n", contacts)
}
