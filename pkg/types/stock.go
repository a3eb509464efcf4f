package types

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultLowStockThreshold is the quantity below which an item is reported
// as low on stock when no threshold is configured.
const DefaultLowStockThreshold = 5

// Stock operation errors.
var (
	ErrInvalidName     = errors.New("item name must be a non-empty string")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrNotFound        = errors.New("item not in stock")
	ErrOverflow        = errors.New("quantity total out of range")
)

// Item is a single stock entry.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Stock is an insertion-ordered mapping from item name to on-hand quantity.
// The zero value is an empty stock ready for use. A Stock is owned by one
// caller and is not safe for concurrent mutation.
type Stock struct {
	names []string
	qty   map[string]int
}

// NewStock returns an empty stock.
func NewStock() *Stock {
	return &Stock{qty: make(map[string]int)}
}

// Add increments the quantity of item by qty, creating the entry at zero
// first when absent, and returns the new total.
// Returns ErrInvalidName for an empty name, ErrInvalidQuantity when qty
// is not positive, and ErrOverflow when the total would exceed math.MaxInt.
// The stock is unchanged on error.
func (s *Stock) Add(item string, qty int) (int, error) {
	if err := validate(item, qty); err != nil {
		return 0, err
	}
	if s.qty[item] > math.MaxInt-qty {
		return 0, ErrOverflow
	}
	if s.qty == nil {
		s.qty = make(map[string]int)
	}
	if _, ok := s.qty[item]; !ok {
		s.names = append(s.names, item)
	}
	s.qty[item] += qty
	return s.qty[item], nil
}

// Remove subtracts qty from item and returns the remaining quantity.
// An item whose quantity drops to zero or below is deleted and 0 is
// returned. Returns ErrNotFound if the item is not in stock; the stock is
// left untouched in that case.
func (s *Stock) Remove(item string, qty int) (int, error) {
	if err := validate(item, qty); err != nil {
		return 0, err
	}
	current, ok := s.qty[item]
	if !ok {
		return 0, ErrNotFound
	}
	remaining := current - qty
	if remaining <= 0 {
		s.delete(item)
		return 0, nil
	}
	s.qty[item] = remaining
	return remaining, nil
}

// Quantity returns the quantity of item, or 0 if it is not in stock.
func (s *Stock) Quantity(item string) int {
	return s.qty[item]
}

// Has reports whether item has an entry.
func (s *Stock) Has(item string) bool {
	_, ok := s.qty[item]
	return ok
}

// LowItems returns the names of items whose quantity is strictly below
// threshold, in insertion order. The result is never nil.
func (s *Stock) LowItems(threshold int) []string {
	low := []string{}
	for _, name := range s.names {
		if s.qty[name] < threshold {
			low = append(low, name)
		}
	}
	return low
}

// Len returns the number of entries.
func (s *Stock) Len() int {
	return len(s.names)
}

// Names returns a copy of the item names in insertion order.
func (s *Stock) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Items returns the entries in insertion order.
func (s *Stock) Items() []Item {
	items := make([]Item, 0, len(s.names))
	for _, name := range s.names {
		items = append(items, Item{Name: name, Quantity: s.qty[name]})
	}
	return items
}

// Clone returns an independent copy.
func (s *Stock) Clone() *Stock {
	c := NewStock()
	for _, name := range s.names {
		c.set(name, s.qty[name])
	}
	return c
}

// Equal reports whether both stocks hold the same entries in the same order.
// A nil other equals an empty stock.
func (s *Stock) Equal(other *Stock) bool {
	if other == nil {
		return s.Len() == 0
	}
	if s.Len() != other.Len() {
		return false
	}
	for i, name := range s.names {
		if other.names[i] != name || other.qty[name] != s.qty[name] {
			return false
		}
	}
	return true
}

// set stores qty for name without validation. Loaders use it to restore
// persisted entries, which may hold any integer.
func (s *Stock) set(name string, qty int) {
	if s.qty == nil {
		s.qty = make(map[string]int)
	}
	if _, ok := s.qty[name]; !ok {
		s.names = append(s.names, name)
	}
	s.qty[name] = qty
}

func (s *Stock) delete(name string) {
	delete(s.qty, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return
		}
	}
}

// StockFromItems builds a stock from entries in order. Later duplicates
// overwrite earlier quantities but keep the first position.
func StockFromItems(items []Item) *Stock {
	s := NewStock()
	for _, it := range items {
		s.set(it.Name, it.Quantity)
	}
	return s
}

// ParseQuantity converts command-line text to a quantity.
// Returns ErrInvalidQuantity if s is not a base-10 integer.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// ValidateName returns ErrInvalidName if item is empty or only whitespace.
func ValidateName(item string) error {
	if strings.TrimSpace(item) == "" {
		return ErrInvalidName
	}
	return nil
}

func validate(item string, qty int) error {
	if err := ValidateName(item); err != nil {
		return err
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	return nil
}
