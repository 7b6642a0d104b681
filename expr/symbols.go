package expr

import "sort"

// FreeSymbols walks the tree and collects every Symbol name outside the
// builtin table, de-duplicated and sorted for stable output. These are
// the slider candidates of the expression. Complexity: O(nodes).
func FreeSymbols(n Node) []string {
	seen := make(map[string]struct{})
	walkSymbols(n, func(name string) {
		if !IsBuiltin(name) {
			seen[name] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// References reports whether the tree contains a Symbol with the given
// name, builtin or not. The classifier uses it to detect equations that
// mention y on both sides. Complexity: O(nodes).
func References(n Node, name string) bool {
	found := false
	walkSymbols(n, func(s string) {
		if s == name {
			found = true
		}
	})

	return found
}

// walkSymbols visits every Symbol node in depth-first order.
func walkSymbols(n Node, visit func(name string)) {
	switch node := n.(type) {
	case Symbol:
		visit(node.Name)
	case Unary:
		walkSymbols(node.Operand, visit)
	case Binary:
		walkSymbols(node.Left, visit)
		walkSymbols(node.Right, visit)
	case Call:
		for _, a := range node.Args {
			walkSymbols(a, visit)
		}
	}
}
