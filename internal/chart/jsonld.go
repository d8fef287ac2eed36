package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"topchart/internal/logging"
)

const ldJSONSelector = `script[type="application/ld+json"]`

const itemListType = "ItemList"

var errEmptyBlock = errors.New("empty ld+json block")

// StructuredData reads titles and ratings from JSON-LD ItemList blocks.
//
// Every block is decoded on its own; a block or list element that does not
// decode is skipped and the remaining ones are still read.
type StructuredData struct {
	Logger *slog.Logger
}

func (StructuredData) Name() string { return "structured_data" }

func (s StructuredData) Extract(p *Page, max int) []Record {
	if p == nil || max <= 0 {
		return nil
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	records := make([]Record, 0, min(max, 256))
	p.doc.Find(ldJSONSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		lists, err := decodeItemLists(sel.Text())
		if err != nil {
			logger.Debug("skipping ld+json block", logging.Int("block", i), logging.Error(err))
			return true
		}
		for _, list := range lists {
			for _, raw := range list.Elements {
				if len(records) >= max {
					return false
				}
				rec, ok := decodeListElement(raw)
				if !ok {
					continue
				}
				records = append(records, rec)
			}
		}
		return len(records) < max
	})
	return records
}

type ldNode struct {
	Type     json.RawMessage   `json:"@type"`
	Elements []json.RawMessage `json:"itemListElement"`
}

func (n ldNode) isItemList() bool {
	if len(n.Type) == 0 {
		return false
	}
	var single string
	if err := json.Unmarshal(n.Type, &single); err == nil {
		return single == itemListType
	}
	var many []string
	if err := json.Unmarshal(n.Type, &many); err == nil {
		for _, t := range many {
			if t == itemListType {
				return true
			}
		}
	}
	return false
}

type ldListElement struct {
	Item json.RawMessage `json:"item"`
}

// ldItem fields stay raw and are decoded one at a time.
type ldItem struct {
	Name            json.RawMessage `json:"name"`
	AggregateRating json.RawMessage `json:"aggregateRating"`
}

type ldRating struct {
	RatingValue json.RawMessage `json:"ratingValue"`
}

// decodeItemLists returns the ItemList nodes of one block. A block may hold a
// single object or an array of objects; non-list nodes are ignored.
func decodeItemLists(text string) ([]ldNode, error) {
	data := bytes.TrimSpace([]byte(text))
	if len(data) == 0 {
		return nil, errEmptyBlock
	}

	var raws []json.RawMessage
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}
	} else {
		raws = []json.RawMessage{data}
	}

	var lists []ldNode
	for _, raw := range raws {
		var node ldNode
		if err := json.Unmarshal(raw, &node); err != nil {
			if len(raws) == 1 {
				return nil, err
			}
			continue
		}
		if node.isItemList() {
			lists = append(lists, node)
		}
	}
	return lists, nil
}

func decodeListElement(raw json.RawMessage) (Record, bool) {
	var el ldListElement
	if err := json.Unmarshal(raw, &el); err != nil || len(el.Item) == 0 {
		return Record{}, false
	}
	var item ldItem
	if err := json.Unmarshal(el.Item, &item); err != nil {
		return Record{}, false
	}
	var name string
	if err := json.Unmarshal(item.Name, &name); err != nil {
		return Record{}, false
	}
	title := CleanTitle(name)
	if strings.TrimSpace(title) == "" {
		return Record{}, false
	}
	return Record{Title: title, Rating: aggregateRating(item.AggregateRating)}, true
}

// aggregateRating reads ratingValue from an aggregateRating object. Any other
// shape leaves the rating unset.
func aggregateRating(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	var r ldRating
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil
	}
	return parseRating(r.RatingValue)
}

// parseRating accepts a JSON number or a numeric string. Anything else leaves
// the rating unset.
func parseRating(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
