// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/bento"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := bento.NewWorld(numEntities)
		filter := bento.NewFilter2[comp1, comp2](w)
		builder := bento.NewBuilder2[comp1, comp2](w)

		for range iters {
			entities := builder.NewEntities(numEntities)
			filter.Reset()
			for filter.Next() {
				c1, c2 := filter.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range entities {
				w.RemoveEntity(e)
			}
		}
	}
}
