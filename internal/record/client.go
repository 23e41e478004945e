package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier is a client's service level. Tiers are ordered from entry-level
// Foundation up to long-term Legacy.
type Tier string

const (
	TierFoundation  Tier = "Foundation"
	TierStewardship Tier = "Stewardship"
	TierLegacy      Tier = "Legacy"
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{TierFoundation, TierStewardship, TierLegacy}

// Rank returns the tier's position in the ordering, or -1 for unknown tiers.
func (t Tier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}

	return -1
}

func (t Tier) Valid() bool {
	return t.Rank() >= 0
}

// Client is an estate owner under a service contract.
type Client struct {
	ID             uuid.UUID
	Name           string
	EstateName     string
	Address        string
	Phone          string
	Email          string
	Tier           Tier
	Acreage        decimal.Decimal
	JoinDate       time.Time
	LastVisit      time.Time
	Notes          string
	AccountBalance Money
	RetainerValue  Money
}

func (c Client) Validate() error {
	if c.ID == uuid.Nil {
		return ErrMissingID
	}

	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client %s: %w", c.ID, ErrEmptyName)
	}

	if !c.Tier.Valid() {
		return fmt.Errorf("client %s: %w %q", c.ID, ErrUnknownTier, c.Tier)
	}

	if c.Acreage.IsNegative() {
		return fmt.Errorf("client %s: acreage: %w", c.ID, ErrNegativeAmount)
	}

	if c.RetainerValue < 0 {
		return fmt.Errorf("client %s: retainer: %w", c.ID, ErrNegativeAmount)
	}

	return nil
}
