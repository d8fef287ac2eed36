package analysis

import "topchart/internal/catalog"

// Category is a textual rating bucket.
type Category string

const (
	Masterpiece  Category = "Masterpiece"
	Excellent    Category = "Excellent"
	Good         Category = "Good"
	Average      Category = "Average"
	Unclassified Category = "Unclassified"
)

// Categories lists the buckets from best to worst.
var Categories = []Category{Masterpiece, Excellent, Good, Average, Unclassified}

// CategoryOf buckets a rating: 9.0 and up is a masterpiece, 8.0 excellent,
// 7.0 good, anything lower average. A missing rating is unclassified.
func CategoryOf(rating *float64) Category {
	if rating == nil {
		return Unclassified
	}
	switch r := *rating; {
	case r >= 9.0:
		return Masterpiece
	case r >= 8.0:
		return Excellent
	case r >= 7.0:
		return Good
	default:
		return Average
	}
}

// ClassifiedMovie pairs a movie with its rating bucket.
type ClassifiedMovie struct {
	catalog.Movie
	Category Category `json:"category"`
}

// Classify assigns a category to every movie, preserving order.
func Classify(movies []catalog.Movie) []ClassifiedMovie {
	out := make([]ClassifiedMovie, 0, len(movies))
	for _, m := range movies {
		rating := m.Rating
		out = append(out, ClassifiedMovie{Movie: m, Category: CategoryOf(&rating)})
	}
	return out
}
