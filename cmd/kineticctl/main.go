// Command kineticctl demonstrates the kinetic engine core: it builds a
// small document by dispatching a fixed action sequence, logs the
// result of a spatial query (rect set by the -query-* flags) to stderr,
// then prints the serialized state to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/kinetic-engine/kinetic"
)

func main() {
	var (
		queryX = flag.Float64("query-x", 0, "spatial query rect origin x")
		queryY = flag.Float64("query-y", 0, "spatial query rect origin y")
		queryW = flag.Float64("query-w", 1000, "spatial query rect width")
		queryH = flag.Float64("query-h", 1000, "spatial query rect height")
		pretty = flag.Bool("pretty", true, "pretty-print the serialized state")
	)
	flag.Parse()

	eng := kinetic.New()

	actions := []kinetic.Action{
		kinetic.AddElementAction{ID: "bg", Name: "background", Shape: kinetic.NewRectShape(0, 0, 800, 600), Fill: "#1a1a1a"},
		kinetic.AddElementAction{ID: "ball", Name: "ball", Shape: kinetic.NewCircleShape(100, 100, 40), Fill: "#ff5533"},
		kinetic.AddKeyframeAction{ElementID: "ball", Property: "x", Keyframe: kinetic.Keyframe{Time: 0, Value: 100, Easing: "linear"}},
		kinetic.AddKeyframeAction{ElementID: "ball", Property: "x", Keyframe: kinetic.Keyframe{Time: 1000, Value: 700, Easing: "ease-in-out"}},
		kinetic.SetTimeAction{Time: 500},
	}

	for _, action := range actions {
		eng.DispatchAction(action)
	}

	ids := eng.QuerySpatial(*queryX, *queryY, *queryW, *queryH)
	log.Printf("query (%.0f,%.0f,%.0fx%.0f) matched %d element(s): %v", *queryX, *queryY, *queryW, *queryH, len(ids), ids)

	data, err := eng.SerializeState()
	if err != nil {
		log.Fatalf("serialize state: %v", err)
	}
	if *pretty {
		var buf interface{}
		if err := json.Unmarshal(data, &buf); err != nil {
			log.Fatalf("re-parse serialized state: %v", err)
		}
		data, err = json.MarshalIndent(buf, "", "  ")
		if err != nil {
			log.Fatalf("pretty-print serialized state: %v", err)
		}
	}
	fmt.Println(string(data))
}
