// Package ledger applies stock operations with diagnostic logging, persists
// through a types.Store, and renders reports.
//
// A Ledger never holds a Stock. Callers own the stock and pass it to each
// method; the Ledger only carries the store, the logger, and the low stock
// threshold.
package ledger

import (
	"errors"

	"github.com/mesh-intelligence/stockroom/internal/logger"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Ledger logs every mutation and persistence step and returns the outcome
// to the caller.
type Ledger struct {
	store     types.Store
	log       *logger.Logger
	threshold int
}

// New returns a Ledger. A nil log discards diagnostics. The threshold is used
// as given; zero means no item is ever low.
func New(store types.Store, log *logger.Logger, threshold int) *Ledger {
	if log == nil {
		log = logger.Nop()
	}
	return &Ledger{store: store, log: log, threshold: threshold}
}

// Threshold returns the low stock threshold used by LowItems.
func (l *Ledger) Threshold() int {
	return l.threshold
}

// Add increments item in stock by qty and returns the new total.
func (l *Ledger) Add(stock *types.Stock, item string, qty int) (int, error) {
	total, err := stock.Add(item, qty)
	if err != nil {
		l.logInvalid(err, item, qty)
		return 0, err
	}
	l.log.Infow("Added item", "item", item, "qty", qty, "total", total)
	return total, nil
}

// Remove subtracts qty from item in stock and returns what is left.
// Removing an item that is not in stock logs a warning and returns
// types.ErrNotFound.
func (l *Ledger) Remove(stock *types.Stock, item string, qty int) (int, error) {
	left, err := stock.Remove(item, qty)
	switch {
	case errors.Is(err, types.ErrNotFound):
		l.log.Warnw("Attempted to remove item that is not in stock", "item", item)
		return 0, err
	case err != nil:
		l.logInvalid(err, item, qty)
		return 0, err
	}

	if left == 0 {
		l.log.Infow("Removed item from stock", "item", item, "qty", qty)
	} else {
		l.log.Infow("Removed item", "item", item, "qty", qty, "total", left)
	}
	return left, nil
}

// AddText is Add for a quantity given as text, as received on the command
// line. Text that is not an integer fails with types.ErrInvalidQuantity.
func (l *Ledger) AddText(stock *types.Stock, item, qty string) (int, error) {
	n, err := l.parse(item, qty)
	if err != nil {
		return 0, err
	}
	return l.Add(stock, item, n)
}

// RemoveText is Remove for a quantity given as text.
func (l *Ledger) RemoveText(stock *types.Stock, item, qty string) (int, error) {
	n, err := l.parse(item, qty)
	if err != nil {
		return 0, err
	}
	return l.Remove(stock, item, n)
}

// parse checks the name before the quantity so diagnostics match Add.
func (l *Ledger) parse(item, qty string) (int, error) {
	if err := types.ValidateName(item); err != nil {
		l.log.Errorw("Invalid item name", "item", item, "error", err)
		return 0, err
	}
	n, err := types.ParseQuantity(qty)
	if err != nil {
		l.log.Errorw("Invalid quantity", "item", item, "qty", qty, "error", err)
		return 0, err
	}
	return n, nil
}

// Quantity returns the quantity of item, or 0 if it is not in stock.
func (l *Ledger) Quantity(stock *types.Stock, item string) int {
	return stock.Quantity(item)
}

// LowItems returns the items below the configured threshold.
func (l *Ledger) LowItems(stock *types.Stock) []string {
	return stock.LowItems(l.threshold)
}

// LowItemsBelow returns the items below threshold.
func (l *Ledger) LowItemsBelow(stock *types.Stock, threshold int) []string {
	return stock.LowItems(threshold)
}

// Load reads the persisted stock. It never fails: a missing file is the
// normal first-run state and logs a warning, unreadable or malformed data
// logs an error, and both yield an empty stock.
func (l *Ledger) Load() *types.Stock {
	stock, err := l.store.Load()
	switch {
	case err == nil:
		l.log.Debugw("Loaded inventory", "path", l.store.Path(), "items", stock.Len())
		return stock
	case errors.Is(err, types.ErrStoreNotFound):
		l.log.Warnw("Inventory file not found, starting with an empty inventory", "path", l.store.Path())
	case errors.Is(err, types.ErrMalformedData):
		l.log.Errorw("Invalid inventory data, starting new inventory", "path", l.store.Path(), "error", err)
	default:
		l.log.Errorw("Could not read inventory, starting new inventory", "path", l.store.Path(), "error", err)
	}
	return types.NewStock()
}

// Save persists stock, replacing the previous contents.
func (l *Ledger) Save(stock *types.Stock) error {
	if err := l.store.Save(stock); err != nil {
		l.log.Errorw("Could not write inventory", "path", l.store.Path(), "error", err)
		return err
	}
	l.log.Infow("Inventory saved", "path", l.store.Path(), "items", stock.Len())
	return nil
}

func (l *Ledger) logInvalid(err error, item string, qty int) {
	switch {
	case errors.Is(err, types.ErrInvalidName):
		l.log.Errorw("Invalid item name", "item", item, "error", err)
	default:
		l.log.Errorw("Invalid quantity", "item", item, "qty", qty, "error", err)
	}
}
