package iconfinder

const (
	defaultSearchCount = 1
	defaultListCount   = 10
)

// Values accepted by the premium and vector filters.
const (
	FilterAll   = "all"
	FilterOnly  = "1"
	FilterNever = "0"
)

// Values accepted by the license filter.
const (
	LicenseNone                     = "none"
	LicenseCommercial               = "commercial"
	LicenseCommercialNonattribution = "commercial-nonattribution"
)

// SearchParams are the paging and filter arguments of SearchIcons.
// A zero Count means 1.
type SearchParams struct {
	Count  int
	Offset int

	Premium    string
	Vector     string
	License    string
	Category   string
	Style      string
	IsExplicit bool
}

// IconsetIconsParams are the arguments of GetIconsetIcons. A zero Count means 10.
type IconsetIconsParams struct {
	Count  int
	Offset int

	Query  string
	Vector string
}

// IconsetListParams are shared by every endpoint that lists iconsets.
// A zero Count means 10; After is the id of the last iconset already seen.
type IconsetListParams struct {
	Count int
	After int

	Premium string
	Vector  string
	License string
}

// ListParams page through categories and styles. A zero Count means 10.
type ListParams struct {
	Count int
	After int
}

func countOrDefault(count, def int) int {
	if count == 0 {
		return def
	}
	return count
}

func (p SearchParams) query(q string) query {
	var out query
	out.set("query", q)
	out.setInt("count", countOrDefault(p.Count, defaultSearchCount))
	out.setInt("offset", p.Offset)
	out.optString("premium", p.Premium)
	out.optString("vector", p.Vector)
	out.optString("license", p.License)
	out.optString("category", p.Category)
	out.optString("style", p.Style)
	out.optBool("is_explicit", p.IsExplicit)
	return out
}

func (p IconsetIconsParams) query() query {
	var out query
	out.setInt("count", countOrDefault(p.Count, defaultListCount))
	out.setInt("offset", p.Offset)
	out.optString("query", p.Query)
	out.optString("vector", p.Vector)
	return out
}

func (p IconsetListParams) query() query {
	var out query
	out.setInt("count", countOrDefault(p.Count, defaultListCount))
	out.optInt("after", p.After)
	out.optString("premium", p.Premium)
	out.optString("vector", p.Vector)
	out.optString("license", p.License)
	return out
}

func (p ListParams) query() query {
	var out query
	out.setInt("count", countOrDefault(p.Count, defaultListCount))
	out.optInt("after", p.After)
	return out
}
