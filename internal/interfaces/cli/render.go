package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

// dateLayout formato de fechas en tablas, el mismo de los archivos de datos.
const dateLayout = "2006-01-02 15:04:05"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func fmtFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func printProducts(w io.Writer, items []dto.ProductResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tCategory\tBrand\tCost\tPrice\tStock\tMin")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			p.ID, p.Name, p.Category, p.Brand,
			p.CostPrice.StringFixed(2), p.SellPrice.StringFixed(2), p.Stock, p.MinStockLevel)
	}
	tw.Flush()
}

// printStockReport es la variante corta de la tabla de productos que usan
// los reportes de existencias.
func printStockReport(w io.Writer, items []dto.ProductResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tCategory\tStock\tMin")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, p.Category, p.Stock, p.MinStockLevel)
	}
	tw.Flush()
}

func printCustomers(w io.Writer, items []dto.CustomerResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tPhone\tEmail\tAddress")
	for _, c := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Address)
	}
	tw.Flush()
}

func printSales(w io.Writer, items []dto.SaleResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tProdID\tCustID\tQty\tTotal\tDate\tCashier")
	for _, s := range items {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			s.ID, s.ProductID, s.CustomerID, s.Quantity,
			s.TotalPrice.StringFixed(2), fmtDate(s.Date), s.Cashier)
	}
	tw.Flush()
}

func printUsers(w io.Writer, items []dto.UserResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUsername\tProducts\tCustomers\tSales\tReports\tUsers\tActive")
	for _, u := range items {
		perms := u.Permissions
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username,
			fmtFlag(perms.ManageProducts), fmtFlag(perms.ManageCustomers),
			fmtFlag(perms.ManageSales), fmtFlag(perms.ViewReports),
			fmtFlag(perms.ManageUsers), fmtFlag(u.IsActive))
	}
	tw.Flush()
}

func printRepairs(w io.Writer, items []dto.RepairResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCustID\tDevice\tProblem\tStatus\tEstCost\tReceived\tCompleted")
	for _, r := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.CustomerID, r.Device, r.Problem, r.Status,
			r.CostEstimate.StringFixed(2), fmtDate(r.DateReceived), fmtDate(r.DateCompleted))
	}
	tw.Flush()
}

func printAssemblies(w io.Writer, items []dto.AssemblyResponse) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCustID\tDesc\tPrice\tStatus\tDate")
	for _, a := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.CustomerID, a.Description, a.Price.StringFixed(2), a.Status, fmtDate(a.Date))
	}
	tw.Flush()
}
