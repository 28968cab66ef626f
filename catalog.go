package pageconv

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// FieldType is the storage type of a declared field.
type FieldType string

// Field types understood by the content store.
const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeWysiwyg  FieldType = "wysiwyg"
	TypeImage    FieldType = "image"
	TypeURL      FieldType = "url"
	TypeGroup    FieldType = "group"
	TypeRepeater FieldType = "repeater"
)

// FieldSource says where the mapper takes a top-level field's value from.
type FieldSource int

const (
	// SourceNone marks a field that is declared but never written.
	SourceNone FieldSource = iota
	SourceTitle
	SourceIntro
	// SourceNoMedia writes the absent-media sentinel.
	SourceNoMedia
)

// Field is one declared field of a field group. Row groups carry their
// sub-fields; image fields return attachment IDs.
type Field struct {
	Key       string      `json:"key" yaml:"key"`
	Label     string      `json:"label" yaml:"label"`
	Name      string      `json:"name" yaml:"name"`
	Type      FieldType   `json:"type" yaml:"type"`
	SubFields []Field     `json:"subFields,omitempty" yaml:"sub_fields,omitempty"`
	Source    FieldSource `json:"-" yaml:"-"`
}

// ShapeKind enumerates the row layouts.
type ShapeKind int

const (
	ShapeStandard ShapeKind = iota
	ShapeMultiBullet
	ShapeFaq
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeStandard:
		return "standard"
	case ShapeMultiBullet:
		return "multi-bullet"
	case ShapeFaq:
		return "faq"
	}
	return "unknown"
}

// RowShape describes which sub-fields a row exposes.
// Count is the bullet count for ShapeMultiBullet and the pair count for
// ShapeFaq. Link adds a url sub-field.
type RowShape struct {
	Kind  ShapeKind
	Count int
	Link  bool
}

// Standard returns the title/copy/photo shape.
func Standard() RowShape { return RowShape{Kind: ShapeStandard} }

// MultiBullet returns a shape with n bullets, each paired with a photo.
func MultiBullet(n int) RowShape { return RowShape{Kind: ShapeMultiBullet, Count: n} }

// Faq returns a shape with n question/answer pairs.
func Faq(n int) RowShape { return RowShape{Kind: ShapeFaq, Count: n} }

// WithLink returns a copy of s with a link sub-field.
func (s RowShape) WithLink() RowShape {
	s.Link = true
	return s
}

// RowRole says which section populates a row.
type RowRole int

const (
	// RoleSection rows are populated from the section with the same
	// 1-based index, and cleared when there is no such section.
	RoleSection RowRole = iota
	// RoleCTA rows are always populated from the last section.
	RoleCTA
)

// Row is one declared row slot of a catalog.
type Row struct {
	Index     int
	Name      string
	Label     string
	Key       string
	TitleName string
	Shape     RowShape
	Role      RowRole

	// subKeys overrides SubFieldKey for rows whose sub-field keys were not
	// derived from the row key.
	subKeys map[string]string
}

// Sub-field names shared by all row shapes.
const (
	SubCopy  = "copy"
	SubCopy2 = "copy2"
	SubPhoto = "photo"
	SubLink  = "link"
)

// BulletName returns the sub-field name of the i-th bullet (1-based).
func BulletName(i int) string { return fmt.Sprintf("bullet_%d", i) }

// PhotoName returns the sub-field name of the photo paired with bullet i.
func PhotoName(i int) string { return fmt.Sprintf("photo_%d", i) }

// QuestionName returns the sub-field name of the i-th FAQ question.
func QuestionName(i int) string { return fmt.Sprintf("question_%d", i) }

// AnswerName returns the sub-field name of the i-th FAQ answer.
func AnswerName(i int) string { return fmt.Sprintf("answer_%d", i) }

// RowName returns the field name of row i ("row_1", "row_2", ...).
func RowName(i int) string { return "row_" + strconv.Itoa(i) }

// SubFieldKey derives a sub-field key from its row key: "<rowKey>_<name>".
func SubFieldKey(rowKey, name string) string { return rowKey + "_" + name }

// ServiceRowKey returns the field key of Service row i (1-based):
// "field_67b910" + two-digit (i+53) + "adae8". Row 1 is "field_67b91054adae8".
func ServiceRowKey(i int) string { return fmt.Sprintf("field_67b910%02dadae8", i+53) }

// CityRowKey returns the field key of City Service row i (1-based):
// "field_68100c" + two-digit (i+99) + "e3ec" + (i+1). Row 1 is
// "field_68100c100e3ec2".
func CityRowKey(i int) string { return fmt.Sprintf("field_68100c%02de3ec%d", i+99, i+1) }

// DynamicGroupKey returns prefix followed by the hex MD5 of the decimal row
// count, so each row count gets its own field group.
func DynamicGroupKey(prefix string, rowCount int) string {
	sum := md5.Sum([]byte(strconv.Itoa(rowCount)))
	return prefix + hex.EncodeToString(sum[:])
}

// SubFieldKey returns the key of the named sub-field of the row.
func (r Row) SubFieldKey(name string) string {
	if key, ok := r.subKeys[name]; ok {
		return key
	}
	return SubFieldKey(r.Key, name)
}

// SubFields returns the row's declared sub-fields in declaration order.
func (r Row) SubFields() []Field {
	names := r.subFieldNames()
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{
			Key:   r.SubFieldKey(name),
			Label: subFieldLabel(name, r.TitleName),
			Name:  name,
			Type:  subFieldType(name, r.TitleName),
		})
	}
	return fields
}

// Declares reports whether the row's shape has a sub-field with the name.
func (r Row) Declares(name string) bool {
	for _, n := range r.subFieldNames() {
		if n == name {
			return true
		}
	}
	return false
}

func (r Row) subFieldNames() []string {
	title := r.TitleName
	if title == "" {
		title = "title"
	}
	var names []string
	switch r.Shape.Kind {
	case ShapeStandard:
		names = []string{title, SubCopy, SubPhoto}
	case ShapeMultiBullet:
		names = []string{title, SubCopy, SubPhoto}
		for i := 1; i <= r.Shape.Count; i++ {
			names = append(names, BulletName(i), PhotoName(i))
		}
		names = append(names, SubCopy2)
	case ShapeFaq:
		names = []string{title, SubCopy, SubCopy2}
		for i := 1; i <= r.Shape.Count; i++ {
			names = append(names, QuestionName(i), AnswerName(i))
		}
	}
	if r.Shape.Link {
		names = append(names, SubLink)
	}
	return names
}

func isPhotoName(name string) bool {
	return strings.HasPrefix(name, SubPhoto)
}

func subFieldType(name, titleName string) FieldType {
	switch {
	case name == titleName || name == "title":
		return TypeText
	case isPhotoName(name):
		return TypeImage
	case name == SubLink:
		return TypeURL
	case strings.HasPrefix(name, "question_"), strings.HasPrefix(name, "answer_"):
		return TypeText
	}
	return TypeWysiwyg
}

func subFieldLabel(name, titleName string) string {
	if name == titleName || name == "title" {
		return "Title"
	}
	label := strings.ReplaceAll(name, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// Catalog is the single declarative layout of one content type: its
// top-level fields, its ordered rows and any fields that are declared but
// never written. Schema declaration (FieldGroup) and field population
// (MapFields) both read it, so they cannot drift apart.
type Catalog struct {
	ContentType ContentType
	GroupKey    string
	GroupTitle  string
	Fields      []Field
	Rows        []Row
	Trailing    []Field
}

// FieldGroup returns the schema declaration for the catalog.
func (c *Catalog) FieldGroup() *FieldGroup {
	fields := make([]Field, 0, len(c.Fields)+len(c.Rows)+len(c.Trailing))
	fields = append(fields, c.Fields...)
	for _, r := range c.Rows {
		fields = append(fields, Field{
			Key:       r.Key,
			Label:     r.Label,
			Name:      r.Name,
			Type:      TypeGroup,
			SubFields: r.SubFields(),
		})
	}
	fields = append(fields, c.Trailing...)

	return &FieldGroup{
		Key:         c.GroupKey,
		Title:       c.GroupTitle,
		ContentType: c.ContentType,
		RowCount:    len(c.Rows),
		Fields:      fields,
	}
}
