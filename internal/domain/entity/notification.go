// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationRecord is an entry in a user's "notificaciones" subcollection.
// It always belongs to exactly one addressee and is written once at creation;
// the pipeline only ever reads it to build a push payload.
type NotificationRecord struct {
	ID        string    `firestore:"-"`                         // Document ID, populated from the snapshot reference.
	Body      string    `firestore:"body"`                      // Free-text message content.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"` // Server-assigned creation time.

	// Caregiver-oriented fields, absent for administrator notifications.
	Tipo           string   `firestore:"tipo,omitempty"`           // Notice category (e.g. "Inasistencia").
	NombreCompleto string   `firestore:"nombreCompleto,omitempty"` // Student full name.
	SID            string   `firestore:"sid,omitempty"`            // Student ID.
	Fecha          string   `firestore:"fecha,omitempty"`          // Date the notice refers to.
	Materias       []string `firestore:"materias,omitempty"`       // Subject names.
	Observaciones  string   `firestore:"observaciones,omitempty"`  // Free-text remarks.
}
