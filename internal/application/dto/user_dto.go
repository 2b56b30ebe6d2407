package dto

// PermissionFlags banderas de permiso por área, tal como se capturan en alta
// de usuario y como viajan en las columnas 1/0 del archivo.
type PermissionFlags struct {
	ManageProducts  bool `json:"manage_products"`
	ManageCustomers bool `json:"manage_customers"`
	ManageSales     bool `json:"manage_sales"`
	ViewReports     bool `json:"view_reports"`
	ManageUsers     bool `json:"manage_users"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username    string          `json:"username" validate:"required,min=1,max=50"`
	Password    string          `json:"password" validate:"required,min=4"`
	Permissions PermissionFlags `json:"permissions"`
}

// UserResponse salida de un usuario. Nunca expone el hash de password.
type UserResponse struct {
	ID          int             `json:"id"`
	Username    string          `json:"username"`
	Permissions PermissionFlags `json:"permissions"`
	IsActive    bool            `json:"is_active"`
}

// UserListResponse listado completo de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Count int            `json:"count"`
}

// ChangePasswordRequest entrada para cambio de password del usuario autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}
