package schema

import "slices"

// Schema is an ordered collection of named field definitions. Order matters:
// fields decode and emit in declaration order, and text-pool slots are
// resolved by position.
type Schema struct {
	names  []string
	fields map[string]*FieldDef
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{fields: make(map[string]*FieldDef)}
}

// Set adds or replaces a field, keeping insertion order for new names.
func (s *Schema) Set(name string, d *FieldDef) *Schema {
	if _, ok := s.fields[name]; !ok {
		s.names = append(s.names, name)
	}
	s.fields[name] = d
	return s
}

// Get returns the definition for name, or nil.
func (s *Schema) Get(name string) *FieldDef {
	return s.fields[name]
}

// Has reports whether name is defined.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Delete removes name if present.
func (s *Schema) Delete(name string) *Schema {
	if _, ok := s.fields[name]; ok {
		delete(s.fields, name)
		i := slices.Index(s.names, name)
		s.names = slices.Delete(s.names, i, i+1)
	}
	return s
}

// Names returns the field names in declaration order. The returned slice is
// shared; callers must not modify it.
func (s *Schema) Names() []string {
	return s.names
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.names)
}

// Groups returns the distinct display group names used anywhere in the
// schema, sorted, excluding the internal and virtual sentinels.
func (s *Schema) Groups() []string {
	seen := make(map[string]bool)
	s.collectGroups(seen)
	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	slices.Sort(groups)
	return groups
}

func (s *Schema) collectGroups(seen map[string]bool) {
	for _, name := range s.names {
		d := s.fields[name]
		if d.Group != "" && d.Group != Internal && d.Group != Virtual {
			seen[d.Group] = true
		}
		for _, c := range d.Cmnds {
			if c.Group != "" && c.Group != Internal && c.Group != Virtual {
				seen[c.Group] = true
			}
		}
		if d.Sub != nil {
			d.Sub.collectGroups(seen)
		}
	}
}

// Clone returns a deep copy. Version tables derive each layout from its
// predecessor by cloning and editing, so snapshots must not share state.
func (s *Schema) Clone() *Schema {
	ns := &Schema{
		names:  slices.Clone(s.names),
		fields: make(map[string]*FieldDef, len(s.fields)),
	}
	for name, d := range s.fields {
		ns.fields[name] = d.clone()
	}
	return ns
}
