package models

type Role string

const (
	RoleUser   Role = "user"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may manage equipment and workers.
func (r Role) IsStaff() bool {
	return r == RoleWorker || r == RoleAdmin
}
