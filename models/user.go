package models

// User is a single record of the users collection.
type User struct {
	// ID is assigned by the store on creation and never changes afterwards.
	// Values supplied by clients in request bodies are ignored.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the contact address of the user. It is stored as given.
	Email string `json:"email"`
}
