package catalogs

// Offer is one priced row read from a catalog, already mapped onto a Key.
type Offer struct {
	Network     Network
	PlanID      string // cost catalog only
	RawSize     string
	RawValidity string
	RawPrice    string

	Key   Key
	Price *float64 // nil when the raw price could not be read

	// Row is the 1-based data row in the source, used to break price ties.
	Row int
}

// HasPrice reports whether the offer carries a usable price.
func (o Offer) HasPrice() bool {
	return o.Price != nil
}
