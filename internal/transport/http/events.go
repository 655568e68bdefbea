package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/eventstack/events-api/internal/app"
	"github.com/eventstack/events-api/internal/domain"
)

// EventService is the minimal interface needed by the event endpoints.
type EventService interface {
	ListEvents(ctx context.Context, status string) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// HandleEvents returns an HTTP handler for the /events collection:
// GET lists (optionally filtered by status), POST creates.
func HandleEvents(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			events, err := svc.ListEvents(r.Context(), r.URL.Query().Get("status"))
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Error retrieving events: "+err.Error())
				return
			}
			if events == nil {
				events = []domain.Event{}
			}
			writeJSON(w, http.StatusOK, listEventsResponse{Events: events})
			return
		case http.MethodPost:
			var req createEventRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
				return
			}
			if missing := req.missingFields(); len(missing) > 0 {
				writeError(w, http.StatusUnprocessableEntity, "Missing required fields: "+strings.Join(missing, ", "))
				return
			}

			event, err := svc.CreateEvent(r.Context(), app.CreateEventInput{
				EventID:     *req.EventID,
				Title:       *req.Title,
				Description: *req.Description,
				Date:        *req.Date,
				Location:    *req.Location,
				Capacity:    *req.Capacity,
				Organizer:   *req.Organizer,
				Status:      req.Status,
			})
			if err != nil {
				switch err {
				case domain.ErrEventAlreadyExists:
					writeError(w, http.StatusConflict, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, "Error creating event: "+err.Error())
				}
				return
			}

			writeJSON(w, http.StatusCreated, createEventResponse{
				EventID: event.EventID,
				Message: "Event created successfully",
			})
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
	}
}

// HandleEventByID returns an HTTP handler for /events/{eventId}:
// GET fetches, PUT partially updates, DELETE removes.
func HandleEventByID(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			event, err := svc.GetEvent(r.Context(), eventID)
			if err != nil {
				switch err {
				case domain.ErrEventNotFound:
					writeError(w, http.StatusNotFound, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, "Error retrieving event: "+err.Error())
				}
				return
			}
			writeJSON(w, http.StatusOK, event)
			return
		case http.MethodPut:
			var req updateEventRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			event, err := svc.UpdateEvent(r.Context(), eventID, req.changes())
			if err != nil {
				switch err {
				case domain.ErrEventNotFound:
					writeError(w, http.StatusNotFound, err.Error())
				case domain.ErrNoFieldsToUpdate:
					writeError(w, http.StatusBadRequest, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, "Error updating event: "+err.Error())
				}
				return
			}
			writeJSON(w, http.StatusOK, event)
			return
		case http.MethodDelete:
			if err := svc.DeleteEvent(r.Context(), eventID); err != nil {
				switch err {
				case domain.ErrEventNotFound:
					writeError(w, http.StatusNotFound, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, "Error deleting event: "+err.Error())
				}
				return
			}
			writeJSON(w, http.StatusOK, messageResponse{Message: "Event deleted successfully"})
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
	}
}

type createEventRequest struct {
	EventID     *string `json:"eventId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Organizer   *string `json:"organizer"`
	Status      string  `json:"status"`
}

func (r createEventRequest) missingFields() []string {
	var missing []string
	if r.EventID == nil {
		missing = append(missing, "eventId")
	}
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.Date == nil {
		missing = append(missing, "date")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	if r.Capacity == nil {
		missing = append(missing, "capacity")
	}
	if r.Organizer == nil {
		missing = append(missing, "organizer")
	}
	return missing
}

// updateEventRequest mirrors the closed updatable field set; every field is
// optional and an omitted or null field is excluded from the update.
type updateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Organizer   *string `json:"organizer"`
	Status      *string `json:"status"`
}

func (r updateEventRequest) changes() domain.EventChanges {
	return domain.EventChanges{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Organizer:   r.Organizer,
		Status:      r.Status,
	}
}

type listEventsResponse struct {
	Events []domain.Event `json:"events"`
}

type createEventResponse struct {
	EventID string `json:"eventId"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func parseEventPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "events" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
