package pageconv_test

import (
	"testing"

	"github.com/fwojciec/pageconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRowKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "field_67b91054adae8", pageconv.ServiceRowKey(1))
	assert.Equal(t, "field_67b91058adae8", pageconv.ServiceRowKey(5))
	assert.Equal(t, "field_67b91099adae8", pageconv.ServiceRowKey(46))
}

func TestCityRowKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "field_68100c100e3ec2", pageconv.CityRowKey(1))
	assert.Equal(t, "field_68100c105e3ec7", pageconv.CityRowKey(6))
}

func TestDynamicGroupKey(t *testing.T) {
	t.Parallel()

	// md5("3") and md5("6")
	assert.Equal(t, "group_dynamic_service_eccbc87e4b5ce2fe28308fd9f2a7baf3", pageconv.DynamicGroupKey("group_dynamic_service_", 3))
	assert.Equal(t, "group_dynamic_city_service_1679091c5a880faf6fb5e6087eb1b2dc", pageconv.DynamicGroupKey("group_dynamic_city_service_", 6))
	assert.NotEqual(t, pageconv.DynamicGroupKey("p_", 3), pageconv.DynamicGroupKey("p_", 4))
}

func TestRow_SubFields(t *testing.T) {
	t.Parallel()

	names := func(fields []pageconv.Field) []string {
		out := make([]string, len(fields))
		for i, f := range fields {
			out[i] = f.Name
		}
		return out
	}

	t.Run("standard row", func(t *testing.T) {
		t.Parallel()

		row := pageconv.Row{Key: "field_x", TitleName: "title", Shape: pageconv.Standard()}

		fields := row.SubFields()

		assert.Equal(t, []string{"title", "copy", "photo"}, names(fields))
		assert.Equal(t, "field_x_title", fields[0].Key)
		assert.Equal(t, pageconv.TypeText, fields[0].Type)
		assert.Equal(t, pageconv.TypeWysiwyg, fields[1].Type)
		assert.Equal(t, pageconv.TypeImage, fields[2].Type)
	})

	t.Run("standard row with link", func(t *testing.T) {
		t.Parallel()

		row := pageconv.Row{Key: "field_x", TitleName: "title", Shape: pageconv.Standard().WithLink()}

		fields := row.SubFields()

		assert.Equal(t, []string{"title", "copy", "photo", "link"}, names(fields))
		assert.Equal(t, pageconv.TypeURL, fields[3].Type)
	})

	t.Run("multi-bullet row", func(t *testing.T) {
		t.Parallel()

		row := pageconv.Row{Key: "field_x", TitleName: "title_", Shape: pageconv.MultiBullet(2)}

		fields := row.SubFields()

		assert.Equal(t, []string{"title_", "copy", "photo", "bullet_1", "photo_1", "bullet_2", "photo_2", "copy2"}, names(fields))
		assert.Equal(t, "Title", fields[0].Label)
		assert.Equal(t, "Bullet 1", fields[3].Label)
		assert.Equal(t, pageconv.TypeImage, fields[4].Type)
	})

	t.Run("faq row", func(t *testing.T) {
		t.Parallel()

		row := pageconv.Row{Key: "field_x", TitleName: "title_", Shape: pageconv.Faq(2)}

		fields := row.SubFields()

		assert.Equal(t, []string{"title_", "copy", "copy2", "question_1", "answer_1", "question_2", "answer_2"}, names(fields))
		assert.Equal(t, pageconv.TypeText, fields[3].Type)
		assert.False(t, row.Declares("photo"))
	})
}

func TestCatalog_FieldGroup(t *testing.T) {
	t.Parallel()

	t.Run("service group has one row per section", func(t *testing.T) {
		t.Parallel()

		cat, err := pageconv.CatalogFor(pageconv.ContentService, 3)
		require.NoError(t, err)

		group := cat.FieldGroup()

		require.NoError(t, group.Validate())
		assert.Equal(t, pageconv.DynamicGroupKey("group_dynamic_service_", 3), group.Key)
		assert.Equal(t, 3, group.RowCount)
		assert.Equal(t, pageconv.ContentService, group.ContentType)
		assert.Equal(t, "Dynamic Service Fields (3 Rows)", group.Title)

		var rowKeys []string
		for _, f := range group.Fields {
			if f.Type == pageconv.TypeGroup {
				rowKeys = append(rowKeys, f.Key)
			}
		}
		assert.Equal(t, []string{
			pageconv.ServiceRowKey(1),
			pageconv.ServiceRowKey(2),
			pageconv.ServiceRowKey(3),
		}, rowKeys)
	})

	t.Run("buyer's guide declares every row", func(t *testing.T) {
		t.Parallel()

		cat, err := pageconv.CatalogFor(pageconv.ContentBuyersGuide, 2)
		require.NoError(t, err)

		group := cat.FieldGroup()

		assert.Equal(t, "group_6807e16816080", group.Key)
		assert.Equal(t, pageconv.BuyersGuideRows, group.RowCount)
	})

	t.Run("city service declares six rows and the CTA row", func(t *testing.T) {
		t.Parallel()

		cat, err := pageconv.CatalogFor(pageconv.ContentCityService, 1)
		require.NoError(t, err)

		group := cat.FieldGroup()

		assert.Equal(t, pageconv.CityServiceRows+1, group.RowCount)
		assert.Equal(t, pageconv.DynamicGroupKey("group_dynamic_city_service_", 6), group.Key)

		require.Len(t, cat.Rows, 7)
		cta := cat.Rows[6]
		assert.Equal(t, 7, cta.Index)
		assert.Equal(t, "field_68100ce3e3ede", cta.Key)
		assert.Equal(t, pageconv.RoleCTA, cta.Role)
		assert.Equal(t, "field_68100ce3e3edf", cta.SubFieldKey("title"))
		assert.Equal(t, "field_68100ce3e3ee2", cta.SubFieldKey("link"))
	})

	t.Run("every written field is declared", func(t *testing.T) {
		t.Parallel()

		for _, ct := range pageconv.ContentTypes() {
			cat, err := pageconv.CatalogFor(ct, 4)
			require.NoError(t, err)

			declared := map[string]pageconv.Field{}
			for _, f := range cat.FieldGroup().Fields {
				declared[f.Key] = f
			}

			doc := &pageconv.ParsedDocument{
				Title: "T", Intro: "I",
				Sections: []pageconv.Section{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}},
			}
			writes, err := pageconv.MapFields(doc, cat)
			require.NoError(t, err)

			for _, w := range writes {
				f, ok := declared[w.Key]
				require.True(t, ok, "%s: write %s (%s) not declared", ct, w.Name, w.Key)
				assert.Equal(t, w.Name, f.Name)
			}
		}
	})
}

func TestFieldGroup_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires key", func(t *testing.T) {
		t.Parallel()

		g := &pageconv.FieldGroup{ContentType: pageconv.ContentService, Fields: []pageconv.Field{{Name: "a"}}}

		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(g.Validate()))
	})

	t.Run("requires valid content type", func(t *testing.T) {
		t.Parallel()

		g := &pageconv.FieldGroup{Key: "k", ContentType: "posts", Fields: []pageconv.Field{{Name: "a"}}}

		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(g.Validate()))
	})

	t.Run("requires fields", func(t *testing.T) {
		t.Parallel()

		g := &pageconv.FieldGroup{Key: "k", ContentType: pageconv.ContentService}

		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(g.Validate()))
	})
}
