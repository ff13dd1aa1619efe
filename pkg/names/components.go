package names

// NameComponents is the decomposed form of one full-name field.
// Every field is either empty or built from letters, internal hyphens,
// internal apostrophes and single separating spaces.
type NameComponents struct {
	Last   string `json:"last"`
	First  string `json:"first"`
	Middle string `json:"middle"`
	Suffix string `json:"suffix"`
}

// IsEmpty reports whether no component was recovered.
func (c NameComponents) IsEmpty() bool {
	return c.Last == "" && c.First == "" && c.Middle == "" && c.Suffix == ""
}

// Fields returns the components in output column order: last, first, middle, suffix.
func (c NameComponents) Fields() []string {
	return []string{c.Last, c.First, c.Middle, c.Suffix}
}
