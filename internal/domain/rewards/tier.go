package rewards

import "strings"

// Tier is a customer's loyalty level. The tier only changes how fast
// points are earned; redemption value is tier-independent.
type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// Earn rates in basis points of the order total (bronze 7%, silver 12%,
// gold 15%, platinum 20%).
var earnBasisPoints = map[Tier]int64{
	TierBronze:   700,
	TierSilver:   1200,
	TierGold:     1500,
	TierPlatinum: 2000,
}

func ParseTier(raw string) Tier {
	t := Tier(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := earnBasisPoints[t]; ok {
		return t
	}
	// Unknown tiers earn at the bronze rate rather than failing.
	return TierBronze
}

func (t Tier) String() string {
	return string(t)
}

// EarnBasisPoints returns the tier's earn rate in basis points of the
// order total.
func (t Tier) EarnBasisPoints() int64 {
	if bp, ok := earnBasisPoints[t]; ok {
		return bp
	}
	return earnBasisPoints[TierBronze]
}
