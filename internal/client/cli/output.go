package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

func printFooter(w io.Writer, p api.Page, shown, total int) {
	page := p.Number
	if page <= 0 {
		page = 1
	}
	fmt.Fprintf(w, "Page %d: %d of %d\n", page, shown, total)
}

// printMessage prints the backend's "message" field, or every field in key
// order, or fallback for an empty answer.
func printMessage(w io.Writer, msg models.Message, fallback string) {
	if m, ok := msg["message"].(string); ok && m != "" {
		fmt.Fprintln(w, m)
		return
	}
	if len(msg) == 0 {
		fmt.Fprintln(w, fallback)
		return
	}
	keys := make([]string, 0, len(msg))
	for k := range msg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %v\n", k, msg[k])
	}
}
