package models

type Role string

const (
	AdminRole        Role = "Admin"
	AssetManagerRole Role = "Asset Manager"
	HRRole           Role = "HR"
	EmployeeRole     Role = "Employee"
)

var Roles = []Role{AdminRole, AssetManagerRole, HRRole, EmployeeRole}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
