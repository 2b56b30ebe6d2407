package entity

// Capability es un permiso individual del sistema. Los permisos se
// combinan en un bitset en User.Capabilities y se consultan con Has.
type Capability uint8

const (
	CapManageProducts Capability = 1 << iota
	CapManageCustomers
	CapManageSales
	CapViewReports
	CapManageUsers
)

// CapAll agrupa todos los permisos (usuario administrador).
const CapAll = CapManageProducts | CapManageCustomers | CapManageSales |
	CapViewReports | CapManageUsers

// String devuelve el nombre corto del permiso, para logs y mensajes.
func (c Capability) String() string {
	switch c {
	case CapManageProducts:
		return "manage_products"
	case CapManageCustomers:
		return "manage_customers"
	case CapManageSales:
		return "manage_sales"
	case CapViewReports:
		return "view_reports"
	case CapManageUsers:
		return "manage_users"
	}
	return "unknown"
}

// User representa un operador del sistema. Username es único y
// sensible a mayúsculas; PasswordHash nunca guarda la clave en claro.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Capabilities Capability
	IsActive     bool
}

// Has indica si el usuario tiene el permiso dado.
func (u *User) Has(c Capability) bool {
	return u.Capabilities&c != 0
}

// Grant agrega un permiso al bitset.
func (u *User) Grant(c Capability) {
	u.Capabilities |= c
}

// Revoke quita un permiso del bitset.
func (u *User) Revoke(c Capability) {
	u.Capabilities &^= c
}
