package codec

import (
	"github.com/tasconf/tasconf/schema"
)

// Commands renders the decoded tree as console commands, grouped by the
// fields' group names. Within a group, commands appear in layout
// declaration order. Masked passwords never yield a command.
func Commands(tree map[string]any, sch *schema.Schema, pol *Policy) map[string][]string {
	out := make(map[string][]string)
	commandsSchema(out, tree, tree, sch, 0, pol)
	return out
}

func commandsSchema(out map[string][]string, root map[string]any, tree map[string]any, sch *schema.Schema, idx int, pol *Policy) {
	for _, name := range sch.Names() {
		v, ok := tree[name]
		if !ok {
			continue
		}
		commandsField(out, root, sch.Get(name), v, idx, pol)
	}
}

func commandsField(out map[string][]string, root map[string]any, d *schema.FieldDef, v any, idx int, pol *Policy) {
	if d.Platform&pol.platform() == 0 {
		return
	}

	if len(d.Array) > 0 {
		arr, ok := v.([]any)
		if !ok {
			return
		}
		elem := d.Elem()
		for i, ev := range arr {
			commandsField(out, root, elem, ev, i+1, pol)
		}
		return
	}

	if d.Sub != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return
		}
		commandsSchema(out, root, m, d.Sub, idx, pol)
		return
	}

	if len(d.Cmnds) == 0 {
		return
	}
	if s, ok := v.(string); ok && s == schema.HiddenPassword {
		return
	}
	for _, c := range d.Cmnds {
		if !pol.wants(c.Group) || c.Group == schema.Internal {
			continue
		}
		for _, line := range c.Emit(v, idx, root) {
			if line == "" {
				continue
			}
			out[c.Group] = append(out[c.Group], line)
		}
	}
}
