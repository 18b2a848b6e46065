// Profiling:
// go build ./profile/views
// go tool pprof -http=":8000" -nodefraction=0.001 ./views mem.pprof

package main

import (
	"reflect"

	"github.com/edwinsyarief/bento"
	"github.com/pkg/profile"
)

type settings struct {
	Gravity float64
}

type transform struct {
	X, Y, Z float64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	registry := bento.NewTypeRegistry()
	bento.RegisterType[settings](registry)
	bento.RegisterType[transform](registry)
	transformType := reflect.TypeFor[transform]()

	for range rounds {
		w := bento.NewWorld(numEntities)
		w.AddResource(&settings{Gravity: -9.81})
		ents := bento.NewBuilder[transform](w).NewEntities(numEntities)

		for range iters {
			resView, compView := bento.ResourcesComponents(w)
			cfg, err := bento.GetResourceMut[settings](resView)
			if err != nil {
				panic(err)
			}
			for _, e := range ents {
				value, _, mark, err := compView.GetComponentDynamicMut(e, transformType, registry)
				if err != nil {
					panic(err)
				}
				tr := value.Interface().(transform)
				tr.Y += cfg.Gravity
				value.Set(tr)
				mark()
			}
			w.AdvanceTick()
		}
	}
}
