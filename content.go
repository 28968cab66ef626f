package pageconv

import "strings"

// ContentType identifies the kind of record a document is converted into.
// The set is closed: every switch over ContentType handles all three values
// and treats anything else as EINVALID.
type ContentType string

// Supported content types. The values are the record types used by the
// content store.
const (
	ContentService     ContentType = "services"
	ContentBuyersGuide ContentType = "buyers_guide"
	ContentCityService ContentType = "near-me"
)

// ContentTypes returns all supported content types in display order.
func ContentTypes() []ContentType {
	return []ContentType{ContentService, ContentBuyersGuide, ContentCityService}
}

// ParseContentType returns the content type named by s.
// Besides the canonical values it accepts a few spellings used on the
// command line ("service", "buyers-guide", "city-service", "city").
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "services", "service":
		return ContentService, nil
	case "buyers_guide", "buyers-guide", "buyersguide":
		return ContentBuyersGuide, nil
	case "near-me", "near_me", "city-service", "city_service", "city":
		return ContentCityService, nil
	}
	return "", Errorf(EINVALID, "unknown content type %q (want services, buyers_guide or near-me)", s)
}

// Valid reports whether t is one of the supported content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentService, ContentBuyersGuide, ContentCityService:
		return true
	}
	return false
}

// Label returns the human-readable name of the content type.
func (t ContentType) Label() string {
	switch t {
	case ContentService:
		return "Service Pages"
	case ContentBuyersGuide:
		return "Buyer's Guide"
	case ContentCityService:
		return "City Service Pages"
	}
	return string(t)
}
