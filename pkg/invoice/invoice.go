package invoice

import (
	"html/template"
	"io"
	"time"
)

// Line is a single invoice line item
type Line struct {
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// Invoice is the per-sale receipt record produced after a successful sale.
// It is ephemeral: rendered for review and printing, never persisted locally.
type Invoice struct {
	ID       string
	Date     time.Time
	Subtotal float64
	Tax      float64
	Total    float64
	Lines    []Line
}

var tmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><title>Invoice {{.ID}}</title></head>
<body style="font-family: Arial; padding: 20px;">
  <h2>MotorShop Invoice</h2>
  <p><strong>Invoice:</strong> {{.ID}}<br/>
  <strong>Date:</strong> {{.Date.Format "2006-01-02 15:04:05"}}</p>
  <hr/>
  <table width="100%" border="1" cellspacing="0" cellpadding="8">
    <thead><tr><th>Part</th><th>Qty</th><th>Price</th><th>Total</th></tr></thead>
    <tbody>
    {{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>${{printf "%.2f" .UnitPrice}}</td><td>${{printf "%.2f" .LineTotal}}</td></tr>
    {{end}}</tbody>
  </table>
  <hr/>
  <p><strong>Subtotal:</strong> ${{printf "%.2f" .Subtotal}}<br/>
  <strong>Tax:</strong> ${{printf "%.2f" .Tax}}<br/>
  <strong>Total:</strong> ${{printf "%.2f" .Total}}</p>
</body>
</html>
`))

// Render writes the invoice as a standalone HTML document
func (inv *Invoice) Render(w io.Writer) error {
	return tmpl.Execute(w, inv)
}
