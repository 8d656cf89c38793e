package schedule

// TimeSlot is a bookable delivery window. The label is the value exchanged
// with the storefront and persisted verbatim on the order; nothing in this
// service ever parses a label back apart.
type TimeSlot struct {
	Label  string
	Cutoff CutoffRule
}

// RegionConfig holds the slot table and flat delivery fee for one emirate.
// Slot order is display order and is preserved through every filter.
type RegionConfig struct {
	Slots          []TimeSlot
	DeliveryFeeFils int64
}

// PickupSlot is a fixed hourly store-pickup window. The 24-hour start hour
// is carried alongside the label so availability checks never have to
// parse "4:00 PM" back into numbers.
type PickupSlot struct {
	Label string
	Hour  int
}

// Catalog is the immutable region->config table plus the fixed pickup
// hours. It is constructed once at startup and only ever read, so it is
// safe for concurrent use without locking. Tests inject synthetic
// catalogs through NewCatalog.
type Catalog struct {
	regions map[Region]RegionConfig
	pickup  []PickupSlot
}

func NewCatalog(regions map[Region]RegionConfig, pickup []PickupSlot) *Catalog {
	rs := make(map[Region]RegionConfig, len(regions))
	for region, cfg := range regions {
		slots := make([]TimeSlot, len(cfg.Slots))
		copy(slots, cfg.Slots)
		cfg.Slots = slots
		rs[region] = cfg
	}
	ps := make([]PickupSlot, len(pickup))
	copy(ps, pickup)
	return &Catalog{regions: rs, pickup: ps}
}

// Region resolves the delivery config for a region. Unknown regions report
// ok=false; callers treat that as "no slots available", never as a failure.
func (c *Catalog) Region(region Region) (RegionConfig, bool) {
	cfg, ok := c.regions[region]
	return cfg, ok
}

// PickupSlots returns the fixed pickup windows in display order.
func (c *Catalog) PickupSlots() []PickupSlot {
	out := make([]PickupSlot, len(c.pickup))
	copy(out, c.pickup)
	return out
}

const fils = 100 // fils per dirham

// DefaultCatalog is the production slot table. Cutoffs and fees are fixed
// business configuration, compiled in rather than loaded from the
// environment.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[Region]RegionConfig{
		RegionDubai: {
			Slots: []TimeSlot{
				{Label: "11:00 AM - 1:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
				{Label: "1:00 PM - 4:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
				{Label: "4:00 PM - 7:00 PM (Dubai Time)", Cutoff: SameDayCutoff(11, 0)},
				{Label: "7:00 PM - 10:00 PM (Dubai Time)", Cutoff: SameDayCutoff(16, 0)},
			},
			DeliveryFeeFils: 30 * fils,
		},
		RegionSharjah: {
			Slots: []TimeSlot{
				{Label: "4:00 PM - 9:00 PM (Dubai Time)", Cutoff: SameDayCutoff(11, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionAjman: {
			Slots: []TimeSlot{
				{Label: "5:00 PM - 9:30 PM (Dubai Time)", Cutoff: SameDayCutoff(11, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionAbuDhabi: {
			Slots: []TimeSlot{
				{Label: "5:00 PM - 9:30 PM (Dubai Time)", Cutoff: SameDayCutoff(11, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionAlAin: {
			Slots: []TimeSlot{
				{Label: "4:00 PM - 10:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionRasAlKhaimah: {
			Slots: []TimeSlot{
				{Label: "4:00 PM - 10:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionUmmAlQuwain: {
			Slots: []TimeSlot{
				{Label: "4:00 PM - 10:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
		RegionFujairah: {
			Slots: []TimeSlot{
				{Label: "4:00 PM - 10:00 PM (Dubai Time)", Cutoff: DayAheadCutoff(20, 0)},
			},
			DeliveryFeeFils: 50 * fils,
		},
	}, defaultPickupSlots())
}

// defaultPickupSlots is the fixed 13-window list, one per hour from
// 9:00 AM through 9:00 PM.
func defaultPickupSlots() []PickupSlot {
	return []PickupSlot{
		{Label: "9:00 AM", Hour: 9},
		{Label: "10:00 AM", Hour: 10},
		{Label: "11:00 AM", Hour: 11},
		{Label: "12:00 PM", Hour: 12},
		{Label: "1:00 PM", Hour: 13},
		{Label: "2:00 PM", Hour: 14},
		{Label: "3:00 PM", Hour: 15},
		{Label: "4:00 PM", Hour: 16},
		{Label: "5:00 PM", Hour: 17},
		{Label: "6:00 PM", Hour: 18},
		{Label: "7:00 PM", Hour: 19},
		{Label: "8:00 PM", Hour: 20},
		{Label: "9:00 PM", Hour: 21},
	}
}
