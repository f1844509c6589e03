package entities

import "time"

// Profile is the user profile joined into enriched views.
//
// Storage model (DynamoDB):
//   - PK: id (equals the authentication identity)
//
// Profiles are a read-only join target; they never reference payments or
// quotations back.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Approved  bool      `json:"approved"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
