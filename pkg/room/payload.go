package room

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Type   string `json:"type"`
	Seat   *int   `json:"seat,omitempty"`
	Action string `json:"action,omitempty"`
	Amount int    `json:"amount,omitempty"`

	// PotWinners maps pot ID to the winning player IDs for a settlement
	// proposal
	PotWinners map[string][]string `json:"potWinners,omitempty"`

	// Context will be passed back on any direct response
	Context string `json:"context,omitempty"`
}
