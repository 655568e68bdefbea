package domain

// StatusActive is the status assigned to events created without one.
const StatusActive = "active"

// Event is a single event record. EventID is caller-supplied, serves as the
// table's primary key, and is immutable once created. CreatedAt is set once
// at creation; UpdatedAt is overwritten on every successful update. Both are
// RFC 3339 UTC timestamps.
type Event struct {
	EventID     string `json:"eventId" dynamodbav:"eventId"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Date        string `json:"date" dynamodbav:"date"`
	Location    string `json:"location" dynamodbav:"location"`
	Capacity    int    `json:"capacity" dynamodbav:"capacity"`
	Organizer   string `json:"organizer" dynamodbav:"organizer"`
	Status      string `json:"status" dynamodbav:"status"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// EventChanges is the closed set of fields a partial update may touch. A nil
// pointer means the caller did not supply the field; only non-nil fields are
// written to storage.
type EventChanges struct {
	Title       *string
	Description *string
	Date        *string
	Location    *string
	Capacity    *int
	Organizer   *string
	Status      *string
}

// IsEmpty reports whether no field was supplied.
func (c EventChanges) IsEmpty() bool {
	return c.Title == nil &&
		c.Description == nil &&
		c.Date == nil &&
		c.Location == nil &&
		c.Capacity == nil &&
		c.Organizer == nil &&
		c.Status == nil
}
