package curve

// ReconcileSliders maps a freshly extracted free-variable list onto an
// existing slider set. A variable whose name already has a slider keeps
// that record untouched — value, range, step and animation state all
// survive the re-parse. New variables get NewSlider defaults. The
// result follows freeVars order, so reconciliation is name-keyed and
// order-stable, never positional. Complexity: O(len(prev)+len(freeVars)).
func ReconcileSliders(freeVars []string, prev []Slider) []Slider {
	byName := make(map[string]Slider, len(prev))
	for _, s := range prev {
		byName[s.Name] = s
	}

	out := make([]Slider, 0, len(freeVars))
	for _, name := range freeVars {
		if s, ok := byName[name]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, NewSlider(name))
	}

	return out
}
