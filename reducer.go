package kinetic

import "sort"

// applyAction runs the pure reducer step: it mutates state in place
// according to action's variant. Actions referencing a missing
// element id are no-ops by design (they only log a warning via
// Logger) so that late-arriving actions against deleted elements never
// poison a session.
func applyAction(state *EngineState, action Action) {
	switch a := action.(type) {
	case AddElementAction:
		state.Elements[a.ID] = newElement(a.ID, a.Name, a.Shape, a.Fill)

	case RemoveElementAction:
		delete(state.Elements, a.ID)
		state.Selection = removeString(state.Selection, a.ID)

	case MoveElementAction:
		if el, ok := state.Elements[a.ID]; ok && el.Shape != nil {
			el.Shape.Translate(float64(a.DX), float64(a.DY))
		} else {
			Logger().Warn("move element: target not found", "id", a.ID)
		}

	case SetFillAction:
		if el, ok := state.Elements[a.ID]; ok {
			el.Fill = a.Fill
			state.Elements[a.ID] = el
		} else {
			Logger().Warn("set fill: target not found", "id", a.ID)
		}

	case SetTimeAction:
		// Unclamped by design: negative or past-duration values are
		// preserved for scrubbing/debugging.
		state.CurrentTime = a.Time

	case TogglePlaybackAction:
		state.IsPlaying = !state.IsPlaying

	case AddKeyframeAction:
		if el, ok := state.Elements[a.ElementID]; ok {
			track := append(el.Animations[a.Property], a.Keyframe)
			sort.SliceStable(track, func(i, j int) bool {
				return track[i].Time < track[j].Time
			})
			el.Animations[a.Property] = track
			state.Elements[a.ElementID] = el
		} else {
			Logger().Warn("add keyframe: target not found", "element_id", a.ElementID, "property", a.Property)
		}

	case SetViewAction:
		state.Transform = a.Transform

	case UpdatePresenceAction:
		state.Presence[a.Presence.UserID] = a.Presence
	}
}

// removeString returns a copy of ids with every occurrence of target
// removed, preserving relative order.
func removeString(ids []string, target string) []string {
	if len(ids) == 0 {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
