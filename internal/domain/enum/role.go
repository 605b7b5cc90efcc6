package enum

// Role is the single role carried by each user account. Role names are part
// of the token contract: the JWT claim, route guards, and the terminal's
// role display all use these strings.
type Role string

const (
	RoleShopOwner        Role = "SHOP_OWNER"
	RoleInventoryManager Role = "INVENTORY_MANAGER"
	RoleSalesExecutive   Role = "SALES_EXECUTIVE"
	RoleSystemAdmin      Role = "SYSTEM_ADMIN"
	RoleAuditor          Role = "AUDITOR"
	RoleVendor           Role = "VENDOR"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleShopOwner, RoleInventoryManager, RoleSalesExecutive,
		RoleSystemAdmin, RoleAuditor, RoleVendor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
