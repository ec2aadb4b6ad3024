package usecase

import (
	"fmt"
	"strings"

	"escuela/internal/domain/service"
)

// Client-side routes attached to pushes so the app can deep-link on tap.
const (
	caregiverNotificationsRoute = "/caregiver-dashboard/tab-notifications"
	adminNotificationsRoute     = "/admin-dashboard/tab-notifications"
)

// CaregiverNotice is the typed payload for a caregiver-addressed notice.
// It keeps the notification's fields strongly typed inside the pipeline and
// flattens to the wire's string map only when the push is built.
type CaregiverNotice struct {
	NotificationID string
	Tipo           string
	NombreCompleto string
	SID            string
	Fecha          string
	Materias       []string
	Observaciones  string
}

// Push composes the multicast message for this notice. Optional fields that
// are absent stay out of the data map entirely.
func (n *CaregiverNotice) Push(tokens []string) *service.MulticastPush {
	data := map[string]string{
		"type":           "caregiver_notification",
		"route":          caregiverNotificationsRoute,
		"notificationId": n.NotificationID,
		"tipo":           n.Tipo,
		"nombreCompleto": n.NombreCompleto,
		"sid":            n.SID,
	}
	if len(n.Materias) > 0 {
		data["materias"] = strings.Join(n.Materias, ", ")
	}
	if n.Fecha != "" {
		data["fecha"] = n.Fecha
	}
	if n.Observaciones != "" {
		data["observaciones"] = n.Observaciones
	}

	return &service.MulticastPush{
		Title:  fmt.Sprintf("Aviso de %s", n.Tipo),
		Body:   fmt.Sprintf("Tienes un aviso de %s para %s", n.Tipo, n.NombreCompleto),
		Data:   data,
		Tokens: tokens,
	}
}

// NewUserAlert is the typed payload announcing a new account to
// administrators.
type NewUserAlert struct {
	UserID string
	Email  string
	Role   string
}

// Body returns the human-visible message, shared between the push and the
// persisted notification record.
func (a *NewUserAlert) Body() string {
	return fmt.Sprintf("Se registró un usuario con el correo: %s", a.Email)
}

// Push composes the multicast message for this alert.
func (a *NewUserAlert) Push(tokens []string) *service.MulticastPush {
	return &service.MulticastPush{
		Title: "Nuevo Usuario:",
		Body:  a.Body(),
		Data: map[string]string{
			"type":      "new_user",
			"route":     adminNotificationsRoute,
			"userId":    a.UserID,
			"userEmail": a.Email,
			"userRole":  a.Role,
		},
		Tokens: tokens,
	}
}
