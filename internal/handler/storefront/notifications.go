package storefront

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/notify"
)

// NotificationHandler exposes the active toast notifications.
type NotificationHandler struct {
	center *notify.Center
}

func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List handles GET /notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"notifications": h.center.List(),
	})
}

// Dismiss handles DELETE /notifications/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.center.Dismiss(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
