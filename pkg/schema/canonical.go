package schema

// ColumnSet is an ordered list of column names the output must carry.
type ColumnSet []string

// DefaultAdminColumns are guaranteed present in every output header. Values
// pass through from the input when the column exists; otherwise the column is
// padded with empty cells.
var DefaultAdminColumns = ColumnSet{"Account", "RecordSeries", "BoxNumber", "Scanning", "ScannedBy"}

// DefaultNameColumns are the computed columns appended to every output row,
// in LastName, FirstName, MiddleName, Suffix order.
var DefaultNameColumns = ColumnSet{"LastName", "FirstName", "MiddleName", "Suffix"}

// Contains reports whether name is in the set (exact, case-sensitive).
func (s ColumnSet) Contains(name string) bool {
	for _, c := range s {
		if c == name {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of s.
func (s ColumnSet) Clone() ColumnSet {
	return append(ColumnSet(nil), s...)
}
