// Package render contiene las proyecciones puras de estado a view
// model: misma entrada, misma salida, sin efectos. Se invocan después
// de cada mutación del carrito o de los códigos, y en el arranque para
// reflejar el estado persistido.
package render

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/domain/entity"
)

// printer formatea montos con separadores en-US ($1,234.50).
var printer = message.NewPrinter(language.AmericanEnglish)

// Money formatea un decimal como monto en USD para mostrar.
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

// totalsView proyecta los totales calculados.
func totalsView(t usecase.Totals) dto.TotalsView {
	discounts := make([]dto.DiscountLineView, 0, len(t.Discounts))
	for _, d := range t.Discounts {
		discounts = append(discounts, dto.DiscountLineView{
			Label:  d.Label,
			Amount: "-" + Money(d.Amount),
		})
	}
	return dto.TotalsView{
		Subtotal:  Money(t.Subtotal),
		Discounts: discounts,
		Total:     Money(t.Total),
	}
}

func lineViews(lines []entity.CartLine) []dto.CartLineView {
	out := make([]dto.CartLineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: Money(l.Price),
			Quantity:  l.Quantity,
			LineTotal: Money(l.LineTotal()),
		})
	}
	return out
}

// Cart proyecta la tabla del carrito. El carrito vacío es una ruta de
// render explícita: Empty=true, sin líneas y totales en $0.00.
func Cart(lines []entity.CartLine, totals usecase.Totals) dto.CartViewResponse {
	if len(lines) == 0 {
		return dto.CartViewResponse{
			Empty: true,
			Lines: []dto.CartLineView{},
			Totals: dto.TotalsView{
				Subtotal:  Money(decimal.Zero),
				Discounts: []dto.DiscountLineView{},
				Total:     Money(decimal.Zero),
			},
		}
	}
	return dto.CartViewResponse{
		Empty:  false,
		Lines:  lineViews(lines),
		Totals: totalsView(totals),
	}
}

// Summary proyecta el resumen del checkout.
func Summary(lines []entity.CartLine, totals usecase.Totals) dto.CheckoutSummaryResponse {
	cart := Cart(lines, totals)
	return dto.CheckoutSummaryResponse{
		Empty:     cart.Empty,
		ItemCount: entity.CartCount(lines),
		Lines:     cart.Lines,
		Totals:    cart.Totals,
	}
}

// Badge proyecta el contador del header: suma de cantidades.
func Badge(lines []entity.CartLine) dto.BadgeResponse {
	return dto.BadgeResponse{Count: entity.CartCount(lines)}
}
