package models

// ItemOption is one of the two answers of a catalog item.
type ItemOption struct {
	Label   string      `json:"label"`
	Weights ScoreVector `json:"weights"`
}

// CatalogItem is an immutable question or quote.
type CatalogItem struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Slot    TimeSlot   `json:"time_slot"`
	OptionA ItemOption `json:"option_a"`
	OptionB ItemOption `json:"option_b"`
}

// Weights returns the weight table of the chosen option.
func (c CatalogItem) Weights(o Option) ScoreVector {
	if o == OptionA {
		return c.OptionA.Weights
	}
	return c.OptionB.Weights
}
