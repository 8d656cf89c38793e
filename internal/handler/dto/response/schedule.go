package response

// SlotsResponse carries the bookable slot labels for a region/date (or
// the pickup date), in catalog order. Slots is always a JSON array, never
// null, so the checkout form can bind it directly to a select box.
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

func FromSlots(labels []string) *SlotsResponse {
	if labels == nil {
		labels = []string{}
	}
	return &SlotsResponse{Slots: labels}
}
