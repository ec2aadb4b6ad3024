// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserProfile is the core identity record of the system, one per
// authenticated account. The document ID doubles as the user ID.
type UserProfile struct {
	ID     string   `firestore:"-"`                // Document ID, populated from the snapshot reference.
	Rol    Role     `firestore:"rol"`              // The user's single role, assigned at account creation.
	Email  string   `firestore:"email"`            // The user's contact email, used as the login identifier.
	Nombre string   `firestore:"nombre,omitempty"` // Optional display name.
	Tokens []string `firestore:"tokens"`           // Registered push device tokens. Conceptually a set; duplicates tolerated.
}
