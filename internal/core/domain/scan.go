package domain

// ScanState is the position of a line scanner relative to a product-list region.
type ScanState int

const (
	// Outside means lines are ignored.
	Outside ScanState = iota
	// Inside means every non-blank line is an entry.
	Inside
)

const (
	// ProductMarker is the first token of the line that opens a product-list region.
	ProductMarker = "product"
	// EndProductListMarker is the first token of the line that closes a product-list region.
	EndProductListMarker = "end_product_list"
)

// String returns a readable name for the state.
func (s ScanState) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// Step applies one tokenized, non-blank line to the state machine.
//
// The closing marker is checked first, then the line is collected if the
// scanner is inside a region, then the opening marker is checked. The
// returned collect flag reports whether the line is an entry; next is the
// state for the following line.
func (s ScanState) Step(tokens []string) (collect bool, next ScanState) {
	next = s
	if tokens[0] == EndProductListMarker {
		next = Outside
	}
	collect = next == Inside
	if tokens[0] == ProductMarker {
		next = Inside
	}
	return collect, next
}
