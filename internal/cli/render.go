package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/models"
)

// PrintJSON writes v as indented JSON.
func (c *Context) PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.Println(string(data))
	return nil
}

// PrintReport renders a day's analysis.
func (c *Context) PrintReport(rec models.AnalysisRecord) {
	c.Printf("📔 %s  (%s)\n\n", rec.Date, rec.DominantType)
	c.Println(rec.Feedback)
	if len(rec.Recommendations) > 0 {
		c.Println()
		c.Println("추천 활동:")
		for _, r := range rec.Recommendations {
			c.Printf("  • %s\n", r)
		}
	}
	c.Printf("\n응답 %d개 · 감정 점수 %+.2f\n", len(rec.Responses), rec.Sentiment.Score)
}

// PrintResponse renders one logged response on a line.
func (c *Context) PrintResponse(r models.Response) {
	label := r.ItemID
	if item, ok := catalog.Find(r.ItemID); ok {
		label = item.Text
	}
	line := fmt.Sprintf("%s  %-9s  %s  %s", r.Timestamp.Format("15:04"), r.Slot, r.Selected, label)
	if r.Mood != "" {
		line += fmt.Sprintf("  [%s]", r.Mood)
	}
	if note := strings.TrimSpace(r.Note); note != "" {
		line += "  : " + note
	}
	c.Println(line)
}

// PrintItem renders a quote or question with its option labels.
func (c *Context) PrintItem(item models.CatalogItem, answered models.Option) {
	mark := " "
	if answered != "" {
		mark = "✓"
	}
	c.Printf("%s [%s] %s\n", mark, item.ID, item.Text)
	c.Printf("      A: %s   B: %s\n", item.OptionA.Label, item.OptionB.Label)
}
