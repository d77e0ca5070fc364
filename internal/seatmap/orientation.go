package seatmap

import "strings"

// SectionRole is the semantic placement of a section inside the venue.
// Venues are authored with a small fixed vocabulary of stand names
// (both English and Spanish forms appear in real descriptors), so the
// classification is a deterministic, ordered substring rule table run
// once when the venue is parsed.
type SectionRole string

const (
	RoleNorth SectionRole = "north"
	RoleSouth SectionRole = "south"
	RoleEast  SectionRole = "east"
	RoleWest  SectionRole = "west"
	RoleVip   SectionRole = "vip"
	RolePit   SectionRole = "pit"
	RoleOther SectionRole = "other"
)

// RowOrder is the direction physical row numbers run relative to the
// rendered grid.
type RowOrder int

const (
	// Ascending numbers physical rows from the first rendered row on:
	// physical row = render index + 1.
	Ascending RowOrder = iota
	// Descending numbers physical rows from the far edge: physical
	// row = total rows - render index. South-facing stands and tiered
	// grandstands are authored this way so that row 1 stays closest to
	// the field regardless of which edge the grid starts from.
	Descending
)

// descendingMarkers flags sections whose physical row numbering runs
// opposite to the render order. Checked before any role rule.
var descendingMarkers = []string{
	"south", "sur",
	"high", "alta",
	"mid", "media",
	"low", "baja",
}

// lateralMarkers flags sections rendered with rows and columns
// swapped (east/west stands run perpendicular to the default axis).
var lateralMarkers = []string{"east", "este", "west", "oeste"}

// roleRules maps name markers to roles. Order matters: "oeste"
// contains "este", so west markers are tested before east ones.
var roleRules = []struct {
	markers []string
	role    SectionRole
}{
	{[]string{"south", "sur"}, RoleSouth},
	{[]string{"west", "oeste"}, RoleWest},
	{[]string{"east", "este"}, RoleEast},
	{[]string{"north", "norte"}, RoleNorth},
	{[]string{"vip"}, RoleVip},
	{[]string{"pit", "pista"}, RolePit},
}

// searchText builds the lower-cased haystack a section is classified
// against: the position tag, the display name and the id all count.
func searchText(s *Section) string {
	return strings.ToLower(s.Position + " " + s.Name + " " + s.ID)
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// classifyRole resolves the semantic role of a section from its
// position/name/id metadata.
func classifyRole(s *Section) SectionRole {
	text := searchText(s)
	for _, rule := range roleRules {
		if containsAny(text, rule.markers) {
			return rule.role
		}
	}
	return RoleOther
}

// rowOrderOf resolves the row numbering direction. The descending set
// is checked first; everything else, including explicitly northern,
// lateral, VIP and unclassified sections, numbers ascending.
func rowOrderOf(s *Section) RowOrder {
	if containsAny(searchText(s), descendingMarkers) {
		return Descending
	}
	return Ascending
}

// isLateral reports whether the section is an east/west stand whose
// rows run perpendicular to the default rendering axis.
func isLateral(s *Section) bool {
	return containsAny(searchText(s), lateralMarkers)
}

// physicalRow maps a zero-based render index onto a 1-based physical
// row number for a section with totalRows rows.
func physicalRow(order RowOrder, totalRows, renderIndex int) int {
	if order == Descending {
		return totalRows - renderIndex
	}
	return renderIndex + 1
}

// renderIndex is the inverse of physicalRow.
func renderIndex(order RowOrder, totalRows, physRow int) int {
	if order == Descending {
		return totalRows - physRow
	}
	return physRow - 1
}
