package schedule

import "strings"

// Region identifies a delivery area (emirate). The catalog owns the set of
// regions the store actually delivers to; anything else resolves to no slots.
type Region string

const (
	RegionDubai        Region = "Dubai"
	RegionSharjah      Region = "Sharjah"
	RegionAjman        Region = "Ajman"
	RegionAbuDhabi     Region = "Abu Dhabi"
	RegionAlAin        Region = "Al Ain"
	RegionRasAlKhaimah Region = "Ras Al Khaimah"
	RegionUmmAlQuwain  Region = "Umm Al Quwain"
	RegionFujairah     Region = "Fujairah"
)

// StorePickupRegion is the emirate the physical store is located in.
// Switching to store pickup forces the selection to this region.
const StorePickupRegion = RegionDubai

var knownRegions = []Region{
	RegionDubai,
	RegionSharjah,
	RegionAjman,
	RegionAbuDhabi,
	RegionAlAin,
	RegionRasAlKhaimah,
	RegionUmmAlQuwain,
	RegionFujairah,
}

func (r Region) String() string {
	return string(r)
}

// ParseRegion matches a raw emirate name case-insensitively against the
// known regions. An unrecognized name is returned as-is with ok=false so
// callers can degrade to "no slots" instead of failing.
func ParseRegion(raw string) (Region, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, r := range knownRegions {
		if strings.EqualFold(trimmed, string(r)) {
			return r, true
		}
	}
	return Region(trimmed), false
}
