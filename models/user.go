package models

// User is the authenticated account as reported by the remote auth
// provider. A nil *User on the changes stream means signed out.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoUrl"`
	IsAnonymous bool   `json:"isAnonymous"`
}
