package customer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

// ParsePrice reads a catalog price string. A single comma followed by one
// or two digits is a decimal separator ("10,50"); any other comma groups
// thousands and must be followed by exactly three digits ("1,234.50").
func ParsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	whole, frac, hasDot := strings.Cut(s, ".")
	if strings.Contains(frac, ",") {
		return decimal.Zero, false
	}
	groups := strings.Split(whole, ",")
	switch {
	case len(groups) == 1:
	case len(groups) == 2 && !hasDot && len(groups[1]) > 0 && len(groups[1]) <= 2:
		s = groups[0] + "." + groups[1]
	default:
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return decimal.Zero, false
			}
		}
		s = strings.Join(groups, "")
		if hasDot {
			s += "." + frac
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CartTotal sums count*price over the items; an unparsable or missing
// price counts as zero.
func CartTotal(items []model.PosOrder) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		price, ok := ParsePrice(item.Product.Price)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Count))))
	}
	return total
}

// FilterCatalog applies category, search and sort locally. items is not modified.
func FilterCatalog(items []model.Catalog, f model.CatalogFilter) []model.Catalog {
	out := make([]model.Catalog, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	category := strings.TrimSpace(f.Category)
	for _, item := range items {
		if category != "" && !inCategory(item, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Author), query) {
			continue
		}
		out = append(out, item)
	}

	switch f.SortBy {
	case model.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return priceLess(out[i], out[j]) })
	case model.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return priceLess(out[j], out[i]) })
	case model.SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	}
	return out
}

func inCategory(item model.Catalog, category string) bool {
	for _, c := range item.Categories {
		if strings.EqualFold(c.CategoryName, category) || strconv.Itoa(c.CategoryID) == category {
			return true
		}
	}
	return false
}

// priceLess orders unparsable prices before every parsed one.
func priceLess(a, b model.Catalog) bool {
	pa, okA := ParsePrice(a.Price)
	pb, okB := ParsePrice(b.Price)
	switch {
	case !okA && !okB:
		return false
	case !okA:
		return true
	case !okB:
		return false
	}
	return pa.LessThan(pb)
}
