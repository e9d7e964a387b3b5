package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/notice"
)

// DropHint is the copy shown in the empty drop zone.
const DropHint = "Support for PDF, DOC, DOCX, TXT files up to 10MB"

// FormatIntakeItems lists accepted documents with a per-item status. Batches
// complete in submission order, so the last PendingCount items are the ones
// still processing.
func FormatIntakeItems(items []domain.IntakeItem, state domain.IntakeBatchState) string {
	if len(items) == 0 {
		return Dim("No documents uploaded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Bold(fmt.Sprintf("Uploaded Documents (%d)", len(items))))
	b.WriteString("\n")

	firstPending := len(items) - state.PendingCount
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			StyleBlue.Render("▤ ") + StyleFg.Render(item.Name),
			Badge(item.Category.Label(), categoryTone(item.Category)),
			Dim(Bytes(item.SizeBytes)),
			itemStatus(state.IsProcessing && i >= firstPending),
		})
	}
	b.WriteString(RenderTable([]string{"NAME", "TYPE", "SIZE", "STATUS"}, rows))

	if !state.IsProcessing {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Bold(true).Render("→ Generate Study Materials"))
		b.WriteString("\n")
	}
	return b.String()
}

func itemStatus(processing bool) string {
	if processing {
		return StyleYellow.Render("◌ Processing...")
	}
	return StyleGreen.Render("✔ Ready")
}

func categoryTone(c domain.MimeCategory) domain.Tone {
	switch c {
	case domain.CategoryPDF:
		return domain.ToneDanger
	case domain.CategoryDocument:
		return domain.ToneInfo
	case domain.CategoryText:
		return domain.ToneSuccess
	default:
		return domain.ToneMuted
	}
}

// FormatNotice renders a toast line. Destructive notices are red.
func FormatNotice(n notice.Notice) string {
	if n.IsDestructive() {
		return StyleRed.Bold(true).Render("✖ "+n.Title) + "  " + StyleRed.Render(n.Description)
	}
	return StyleGreen.Bold(true).Render("✔ "+n.Title) + "  " + StyleFg.Render(n.Description)
}
