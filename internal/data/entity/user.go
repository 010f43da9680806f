package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	Phone        *string `db:"phone"`
	Role         Role    `db:"role"`
	IsActive     bool    `db:"is_active"`
}

// Actor builds the actor value carried through service calls.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
