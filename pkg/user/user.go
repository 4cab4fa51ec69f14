package user

// User is an account record. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password []byte `json:"-"`
}
