package formatter

import (
	"strings"

	"github.com/alexanderramin/stockpile/internal/app"
)

// FormatShoppingList groups entries under their category headers.
func FormatShoppingList(resp *app.ShoppingListResponse) string {
	if len(resp.Entries) == 0 {
		return StyleGreen.Render("Nothing to buy. Every recommendation is covered.") + "\n"
	}

	var b strings.Builder
	current := ""
	var rows [][]string
	flush := func() {
		if len(rows) == 0 {
			return
		}
		b.WriteString(Table{
			Headers:    []string{"ITEM", "BUY", "UNIT"},
			Rows:       rows,
			RightAlign: map[int]bool{1: true},
		}.Render())
		rows = nil
	}

	for _, e := range resp.Entries {
		if e.CategoryID != current {
			flush()
			if current != "" {
				b.WriteString("\n")
			}
			current = e.CategoryID
			b.WriteString(Header(e.CategoryName) + "\n")
		}
		rows = append(rows, []string{e.Name, FormatNumber(e.Missing), string(e.Unit)})
	}
	flush()

	return RenderBox("Shopping list", b.String())
}

// FormatShoppingListPlain renders one "category<TAB>item<TAB>amount<TAB>unit"
// line per entry for piping into other tools.
func FormatShoppingListPlain(resp *app.ShoppingListResponse) string {
	var b strings.Builder
	for _, e := range resp.Entries {
		b.WriteString(strings.Join([]string{e.CategoryID, e.Name, FormatNumber(e.Missing), string(e.Unit)}, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}
