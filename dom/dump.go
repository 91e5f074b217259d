package dom

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump returns an indented outline of the tree rooted at n. It is meant for
// debugging and makes no attempt to be parseable.
func Dump(n Node) string {
	tree := tp.New()
	dumpInto(tree, n)
	return tree.String()
}

func dumpInto(branch tp.Tree, n Node) {
	switch n := n.(type) {
	case Text:
		branch.AddNode(fmt.Sprintf("text %q", n.Data))
	case Comment:
		branch.AddNode(fmt.Sprintf("comment %q", n.Data))
	case *Element:
		label := "<" + n.Tag + ">"
		if len(n.Attributes) > 0 {
			label += " " + dumpAttributes(n.Attributes)
		}
		if len(n.Children) == 0 {
			branch.AddNode(label)
			return
		}
		sub := branch.AddBranch(label)
		for _, child := range n.Children {
			dumpInto(sub, child)
		}
	}
}

func dumpAttributes(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name
		if a.Namespace != "" {
			name = a.Namespace + ":" + name
		}
		for _, v := range a.Values {
			switch v := v.(type) {
			case Simple:
				parts = append(parts, fmt.Sprintf("%s=%q", name, v.Value.String()))
			case Style:
				parts = append(parts, fmt.Sprintf("%s=%q", name, strings.Join(v.Declarations, ";")))
			}
		}
	}
	return strings.Join(parts, " ")
}
