package readmodel

import "github.com/google/uuid"

// Availability is the public availability projection for one service on
// one local calendar day. Slots are HH:MM local start times; Reason is set
// only when the day is explicitly blacked out.
type Availability struct {
	Timezone  string
	Date      string
	ServiceID uuid.UUID
	Slots     []string
	Reason    *string
}
