package model

// Event is a single scheduled happening. Values are never modified once the
// store has issued them.
type Event struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"` // YYYY-MM-DD
	Time        string `json:"time" yaml:"time"` // HH:MM
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	ImageURI    string `json:"imageUri" yaml:"imageUri"`
}

// EventDraft is a validated event that has not been assigned an id yet.
type EventDraft struct {
	Title       string `json:"title" validate:"required,min=3"`
	Date        string `json:"date" validate:"required,ymd"`
	Time        string `json:"time" validate:"required,hhmm"`
	Location    string `json:"location" validate:"required,min=5"`
	Description string `json:"description" validate:"required,min=10"`
	Category    string `json:"category" validate:"required"`
	ImageURI    string `json:"imageUri" validate:"required,url"`
}

// WithID builds the stored form of the draft.
func (d EventDraft) WithID(id string) Event {
	return Event{
		ID:          id,
		Title:       d.Title,
		Date:        d.Date,
		Time:        d.Time,
		Location:    d.Location,
		Description: d.Description,
		Category:    d.Category,
		ImageURI:    d.ImageURI,
	}
}

// Draft strips the id from e.
func (e Event) Draft() EventDraft {
	return EventDraft{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Description: e.Description,
		Category:    e.Category,
		ImageURI:    e.ImageURI,
	}
}

// CreateEventRequest is the raw form payload posted by clients.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURI    string `json:"imageUri"`
}

// ListEventsQuery is bound from the list endpoint query string.
type ListEventsQuery struct {
	Category string `form:"category"`
}
