package models

// Caller is the capability-tagged identity resolved once per request and
// passed to every scoped query. SellerID is empty unless the user has a
// verified seller profile; admin scope leaves it empty on purpose so joins
// stay unfiltered.
type Caller struct {
	UserID   string
	Name     string
	IsAdmin  bool
	SellerID string
}

func (c Caller) IsSeller() bool { return c.SellerID != "" }
