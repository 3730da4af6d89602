package handlers

import "fmt"

// Failure messages exposed on the wire. Clients match on these strings.
const (
	MsgInvalidInput = "Invalid input"
	MsgMissingInput = "Missing input"
	MsgInvalidURL   = "Invalid URL"
)

// MsgIDNotFound formats the not-found message for a well-formed review ID
func MsgIDNotFound(id int) string {
	return fmt.Sprintf("ID %d does not exist", id)
}

// MsgUsernameNotFound formats the referential failure for an unknown user
func MsgUsernameNotFound(username string) string {
	return fmt.Sprintf("Username %s does not exist", username)
}
