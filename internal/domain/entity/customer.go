package entity

// Customer representa un cliente de la tienda.
// Address es texto libre y puede contener comas, por eso el formato
// en disco cita todos los campos.
type Customer struct {
	ID      int
	Name    string
	Phone   string
	Email   string
	Address string
}
