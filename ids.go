package nurikabe

// RegionID, PoolID, IslandID and GapID are indices into a Grid's
// owning containers. Cells never hold pointers to Region/Pool/Island/
// Gap — only these ids, which rebuild invalidates and reassigns on
// every call.
type (
	RegionID int
	PoolID   int
	IslandID int
	GapID    int
)

// noID (-1) is the value every id type uses for "not assigned to any
// container"; the zero value 0 is a real id.
const noID = -1

func (id RegionID) valid() bool { return id != noID }
func (id PoolID) valid() bool   { return id != noID }
func (id IslandID) valid() bool { return id != noID }
func (id GapID) valid() bool    { return id != noID }
