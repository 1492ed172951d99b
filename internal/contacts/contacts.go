// Package contacts is the saved-customer book: additions and name search
// only, no update or delete.
package contacts

// Contact is a saved customer. Uniqueness is not enforced.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
