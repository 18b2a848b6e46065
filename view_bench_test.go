package bento_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/edwinsyarief/bento"
)

func BenchmarkSplitOffResource(b *testing.B) {
	world := bento.NewWorld(16)
	world.AddResource(&ResA{Value: "a"})
	ta := reflect.TypeFor[ResA]()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		view := bento.NewWorldView(world)
		view.SplitOffResource(ta)
	}
}

func BenchmarkGetResourceMut(b *testing.B) {
	world := bento.NewWorld(16)
	world.AddResource(&ResA{Value: "a"})
	view := bento.NewWorldView(world)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := bento.GetResourceMut[ResA](view); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetComponentDynamicMut(b *testing.B) {
	world := bento.NewWorld(16)
	e := world.CreateEntity()
	bento.SetComponent(world, e, Position{X: 1})
	registry := bento.NewTypeRegistry()
	bento.RegisterType[Position](registry)
	posType := reflect.TypeFor[Position]()
	view := bento.NewWorldView(world)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, _, _, err := view.GetComponentDynamicMut(e, posType, registry); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterIteration(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			world := bento.NewWorld(size)
			bento.NewBuilder2[Position, Velocity](world).NewEntities(size)
			filter := bento.NewFilter2[Position, Velocity](world)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				filter.Reset()
				for filter.Next() {
					pos, vel := filter.Get()
					pos.X += vel.VX
				}
			}
		})
	}
}
