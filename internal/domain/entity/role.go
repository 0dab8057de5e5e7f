package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDEngineer = 2
	RoleIDCustomer = 3
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleEngineer = "engineer"
	RoleCustomer = "customer"
)

// RoleNameByID maps a role ID to its canonical name.
func RoleNameByID(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDEngineer:
		return RoleEngineer
	case RoleIDCustomer:
		return RoleCustomer
	default:
		return ""
	}
}
