package ledger

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	reportHeader = "--- Items Report ---"
	reportFooter = "--------------------"
	reportEmpty  = "Inventory is empty."
)

// WriteReport renders stock as a fixed-format text block: a blank line, the
// header, one "name -> quantity" line per item in insertion order (or the
// empty placeholder), the footer, and a closing blank line.
func WriteReport(w io.Writer, stock *types.Stock) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", reportHeader); err != nil {
		return err
	}
	if stock.Len() == 0 {
		if _, err := fmt.Fprintln(w, reportEmpty); err != nil {
			return err
		}
	}
	for _, it := range stock.Items() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", it.Name, it.Quantity); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", reportFooter)
	return err
}
