package pageconv

import "fmt"

// Adapter describes one content type: its top-level fields and the catalog
// of rows a document of that type is mapped onto. Implementations are
// stateless. The interface is sealed; the only implementations are the ones
// returned by AdapterFor.
type Adapter interface {
	// ContentType returns the content type the adapter serves.
	ContentType() ContentType

	// Catalog returns the layout used for a document with sectionCount
	// extracted sections. Only the Service layout depends on the count.
	Catalog(sectionCount int) *Catalog

	adapter()
}

// AdapterFor returns the adapter of a content type.
func AdapterFor(ct ContentType) (Adapter, error) {
	switch ct {
	case ContentService:
		return serviceAdapter{}, nil
	case ContentBuyersGuide:
		return buyersGuideAdapter{}, nil
	case ContentCityService:
		return cityServiceAdapter{}, nil
	}
	return nil, Errorf(EINVALID, "unknown content type %q", ct)
}

// CatalogFor returns the catalog of a content type for a document with
// sectionCount extracted sections.
func CatalogFor(ct ContentType, sectionCount int) (*Catalog, error) {
	a, err := AdapterFor(ct)
	if err != nil {
		return nil, err
	}
	return a.Catalog(sectionCount), nil
}

// serviceAdapter lays out one standard row per extracted section.
type serviceAdapter struct{}

func (serviceAdapter) adapter() {}

func (serviceAdapter) ContentType() ContentType { return ContentService }

func (serviceAdapter) Catalog(sectionCount int) *Catalog {
	if sectionCount < 0 {
		sectionCount = 0
	}

	rows := make([]Row, 0, sectionCount)
	for i := 1; i <= sectionCount; i++ {
		rows = append(rows, Row{
			Index:     i,
			Name:      RowName(i),
			Label:     fmt.Sprintf("Row %d", i),
			Key:       ServiceRowKey(i),
			TitleName: "title",
			Shape:     Standard(),
			Role:      RoleSection,
		})
	}

	return &Catalog{
		ContentType: ContentService,
		GroupKey:    DynamicGroupKey("group_dynamic_service_", sectionCount),
		GroupTitle:  fmt.Sprintf("Dynamic Service Fields (%d Rows)", sectionCount),
		Fields: []Field{
			{Key: "field_63e531e72812b", Label: "Service Name", Name: "service_name", Type: TypeText, Source: SourceTitle},
			{Key: "field_64d3d57ed8f35", Label: "Short Description", Name: "short_description", Type: TypeTextarea, Source: SourceIntro},
			{Key: "field_64d3d2265cb9a", Label: "Mobile Hero", Name: "icon", Type: TypeImage, Source: SourceNoMedia},
			{Key: "field_63e6c89541742", Label: "H1 Heading", Name: "h1_heading", Type: TypeText, Source: SourceTitle},
			{Key: "field_63f2aa1a72c61", Label: "Intro Copy", Name: "intro_copy", Type: TypeWysiwyg, Source: SourceIntro},
		},
		Rows: rows,
		Trailing: []Field{
			{
				Key: "field_644af6f260f76", Label: "FAQs", Name: "faqs", Type: TypeRepeater,
				SubFields: []Field{
					{Key: "field_644af6fe60f77", Label: "Question", Name: "question", Type: TypeTextarea},
					{Key: "field_644af70a60f78", Label: "Answer", Name: "answer", Type: TypeWysiwyg},
				},
			},
		},
	}
}

// BuyersGuideRows is the fixed number of rows of a Buyer's Guide. Sections
// past this row are dropped.
const BuyersGuideRows = 23

// buyersGuideRows declares the Buyer's Guide rows in index order.
var buyersGuideRows = [BuyersGuideRows]struct {
	key   string
	shape RowShape
}{
	{"field_6807e41b336e4", Standard()},
	{"field_6807e43b336e8", Standard()},
	{"field_6807e43f336ec", Standard()},
	{"field_6807e442336f0", Standard()},
	{"field_6807e444336f4", Standard()},
	{"field_6807e5f3336f8", MultiBullet(5)},
	{"field_68081e85c01af", Standard()},
	{"field_68081eadc01bd", MultiBullet(4)},
	{"field_68081edfc01cb", MultiBullet(4)},
	{"field_68081ee1c01d7", MultiBullet(3)},
	{"field_68081f02c01e3", Standard()},
	{"field_68081fb066141", Standard()},
	{"field_68081fb366145", Standard()},
	{"field_68081fb566149", Standard()},
	{"field_68081fb76614d", Standard()},
	{"field_68081fba66151", Standard()},
	{"field_68081fbc66155", Standard()},
	{"field_68081fbe66159", Standard()},
	{"field_68081fc06615d", Standard()},
	{"field_68081fc366161", Standard()},
	{"field_68081fca66165", Faq(5)},
	{"field_6808202166174", Standard()},
	{"field_6808204666183", Standard()},
}

// buyersGuideAdapter lays out the fixed 23-row Buyer's Guide.
type buyersGuideAdapter struct{}

func (buyersGuideAdapter) adapter() {}

func (buyersGuideAdapter) ContentType() ContentType { return ContentBuyersGuide }

func (buyersGuideAdapter) Catalog(int) *Catalog {
	rows := make([]Row, 0, BuyersGuideRows)
	for i, def := range buyersGuideRows {
		rows = append(rows, Row{
			Index:     i + 1,
			Name:      RowName(i + 1),
			Label:     fmt.Sprintf("Row %d", i+1),
			Key:       def.key,
			TitleName: "title_",
			Shape:     def.shape,
			Role:      RoleSection,
		})
	}

	return &Catalog{
		ContentType: ContentBuyersGuide,
		GroupKey:    "group_6807e16816080",
		GroupTitle:  "Buyer's Guide",
		Fields: []Field{
			{Key: "field_6807e169336e2", Label: "Headline", Name: "headline", Type: TypeText, Source: SourceTitle},
			{Key: "field_6807e3ff336e3", Label: "Intro", Name: "intro", Type: TypeWysiwyg, Source: SourceIntro},
		},
		Rows: rows,
	}
}

// CityServiceRows is the number of section rows of a City Service page,
// not counting the CTA row.
const CityServiceRows = 6

// cityServiceAdapter lays out six linkable rows and a CTA row.
type cityServiceAdapter struct{}

func (cityServiceAdapter) adapter() {}

func (cityServiceAdapter) ContentType() ContentType { return ContentCityService }

func (cityServiceAdapter) Catalog(int) *Catalog {
	rows := make([]Row, 0, CityServiceRows+1)
	for i := 1; i <= CityServiceRows; i++ {
		rows = append(rows, Row{
			Index:     i,
			Name:      RowName(i),
			Label:     fmt.Sprintf("Row %d", i),
			Key:       CityRowKey(i),
			TitleName: "title",
			Shape:     Standard().WithLink(),
			Role:      RoleSection,
		})
	}
	rows = append(rows, Row{
		Index:     CityServiceRows + 1,
		Name:      RowName(CityServiceRows + 1),
		Label:     "CTA Row",
		Key:       "field_68100ce3e3ede",
		TitleName: "title",
		Shape:     Standard().WithLink(),
		Role:      RoleCTA,
		subKeys: map[string]string{
			"title":  "field_68100ce3e3edf",
			SubCopy:  "field_68100ce3e3ee0",
			SubPhoto: "field_68100ce3e3ee1",
			SubLink:  "field_68100ce3e3ee2",
		},
	})

	return &Catalog{
		ContentType: ContentCityService,
		GroupKey:    DynamicGroupKey("group_dynamic_city_service_", CityServiceRows),
		GroupTitle:  fmt.Sprintf("Dynamic City Service Fields (%d Rows)", CityServiceRows),
		Fields: []Field{
			{Key: "field_63af748c642f0", Label: "Headline", Name: "headline", Type: TypeText, Source: SourceTitle},
			{Key: "field_68100cf1e3ee3", Label: "Intro Text", Name: "intro_text", Type: TypeWysiwyg, Source: SourceIntro},
		},
		Rows: rows,
		Trailing: []Field{
			{Key: "field_63f3a443f3eaf", Label: "Directions Map", Name: "directions_map", Type: TypeWysiwyg},
			{
				Key: "field_63f3a45bf3eb0", Label: "Geo Referencing", Name: "geo_referencing", Type: TypeGroup,
				SubFields: []Field{
					{Key: "field_63f3a4e9f3eb1", Label: "Geo Location Image", Name: "geo_location_image", Type: TypeImage},
					{Key: "field_63f3a4fdf3eb2", Label: "Image Attribution", Name: "image_attribution", Type: TypeText},
				},
			},
			{Key: "field_63f3a508f3eb3", Label: "Places of Interest", Name: "places_of_interest", Type: TypeWysiwyg},
		},
	}
}
