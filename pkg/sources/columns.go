package sources

// Columns names the header of each field a parser reads. Empty names are not
// read.
type Columns struct {
	Network  string
	PlanID   string
	Size     string
	Validity string
	PlanName string
	Price    string
}

// Default column layouts of the known catalogs.
var (
	CostColumns = Columns{
		Network:  "Network",
		PlanID:   "ID",
		Size:     "Plan Size",
		Validity: "Validity_Type",
		Price:    "Price",
	}
	DefaultColumns = Columns{
		Network:  "Network",
		Size:     "Plan Size",
		Validity: "Validity_Type",
		Price:    "Price",
	}
	CompetitorAColumns = Columns{
		Network:  "Network",
		PlanName: "Plan Name",
		Price:    "Price",
	}
	CompetitorBColumns = Columns{
		Network:  "Network",
		Size:     "Plan Size",
		Validity: "Validity_Desc",
		Price:    "Price",
	}
)

// ColumnsFor returns the default layout for a known source. Unknown sources
// get the competitor B layout.
func ColumnsFor(id ID) Columns {
	switch id {
	case CostCatalogID:
		return CostColumns
	case DefaultCatalogID:
		return DefaultColumns
	case CompetitorAID:
		return CompetitorAColumns
	default:
		return CompetitorBColumns
	}
}

// required returns the non-empty column names in a fixed order.
func (c Columns) required() []string {
	var names []string
	for _, n := range []string{c.Network, c.PlanID, c.Size, c.Validity, c.PlanName, c.Price} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
