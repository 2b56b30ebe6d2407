package dto

// CreateCustomerRequest entrada para registrar un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerListResponse listado completo de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Count int                `json:"count"`
}
