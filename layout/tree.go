package layout

import "strings"

// Tree renders the folder's declared entries as an indented tree. It shows
// the declared layout, not the filesystem state.
func (f *Folder) Tree() string {
	var b strings.Builder
	f.writeTree(&b, 0)
	return b.String()
}

func (f *Folder) writeTree(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + f.name + "/\n")
	for _, name := range f.order {
		if fl, ok := f.files[name]; ok {
			b.WriteString(indent + "  " + name + fl.format.Ext() + "\n")
		}
		if c, ok := f.children[name]; ok {
			c.writeTree(b, depth+1)
		}
	}
}
