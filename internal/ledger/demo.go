package ledger

import (
	"fmt"
	"io"
	"strings"
)

// RunDemo drives the fixed demonstration session: load, mutate, query,
// save, reload, report. The reload only logs what was persisted; the report
// shows the session's own stock. Failed steps are logged and skipped; the only
// error returned is a failure to write to w.
func (l *Ledger) RunDemo(w io.Writer) error {
	stock := l.Load()

	l.Add(stock, "apple", 10)
	l.Add(stock, "banana", -2)
	l.AddText(stock, "", "ten")
	l.Remove(stock, "apple", 3)
	l.Remove(stock, "orange", 1)

	if _, err := fmt.Fprintf(w, "Apple stock: %d\n", l.Quantity(stock, "apple")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Low items: %s\n", formatNames(l.LowItems(stock))); err != nil {
		return err
	}

	l.Save(stock)
	l.Load()
	return WriteReport(w, stock)
}

func formatNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
