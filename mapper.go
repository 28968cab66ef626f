package pageconv

// MapFields translates a parsed document into the field writes for a
// catalog. Top-level fields come first, then one write per catalog row in
// row order:
//
//   - a section row whose index is within the extracted sections is
//     populated from that section according to its shape;
//   - a section row past the last extracted section gets a clearing write
//     (every sub-field blank, photos NoMedia), so values from an earlier
//     write of the same record do not survive;
//   - a CTA row is populated from the last section. A document without
//     sections fails with ENOSECTIONS.
//
// A Service catalog must have one row per section, otherwise MapFields
// fails with EMISMATCH.
//
// Every image field is written as NoMedia. The result depends only on doc
// and cat.
func MapFields(doc *ParsedDocument, cat *Catalog) ([]FieldWrite, error) {
	if doc == nil || cat == nil {
		return nil, Errorf(EINTERNAL, "document and catalog required")
	}
	// Service rows follow the section count; a catalog built for another
	// count would drop or clear sections.
	if cat.ContentType == ContentService && len(cat.Rows) != len(doc.Sections) {
		return nil, Errorf(EMISMATCH, "%s catalog declares %d rows but the document has %d sections",
			cat.ContentType.Label(), len(cat.Rows), len(doc.Sections))
	}

	writes := make([]FieldWrite, 0, len(cat.Fields)+len(cat.Rows))
	for _, f := range cat.Fields {
		var v Value
		switch f.Source {
		case SourceTitle:
			v = Text(doc.Title)
		case SourceIntro:
			v = Text(doc.Intro)
		case SourceNoMedia:
			v = NoMedia
		default:
			continue
		}
		writes = append(writes, FieldWrite{Key: f.Key, Name: f.Name, Value: v})
	}

	for _, row := range cat.Rows {
		var group Group
		var err error

		switch row.Role {
		case RoleCTA:
			last, ok := LastSection(doc.Sections)
			if !ok {
				return nil, Errorf(ENOSECTIONS, "%s: %s needs at least one section", cat.ContentType.Label(), row.Label)
			}
			group, err = populateRow(row, last, doc.FAQs)
		case RoleSection:
			if row.Index <= len(doc.Sections) {
				group, err = populateRow(row, doc.Sections[row.Index-1], doc.FAQs)
			} else {
				group = clearRow(row)
			}
		default:
			err = Errorf(EINTERNAL, "row %s has unknown role %d", row.Name, row.Role)
		}
		if err != nil {
			return nil, err
		}

		writes = append(writes, FieldWrite{Key: row.Key, Name: row.Name, Value: group})
	}

	return writes, nil
}

// populateRow fills a row from a section. Bullets beyond those present are
// written as empty strings; FAQ pairs beyond those present are left unset.
func populateRow(row Row, s Section, faqs []FaqPair) (Group, error) {
	title := row.TitleName
	if title == "" {
		title = "title"
	}
	values := map[string]Value{
		title:   Text(s.Title),
		SubCopy: Text(s.Body),
	}

	switch row.Shape.Kind {
	case ShapeStandard:
		values[SubPhoto] = NoMedia
	case ShapeMultiBullet:
		values[SubPhoto] = NoMedia
		for i := 1; i <= row.Shape.Count; i++ {
			bullet := ""
			if i <= len(s.Bullets) {
				bullet = s.Bullets[i-1]
			}
			values[BulletName(i)] = Text(bullet)
			values[PhotoName(i)] = NoMedia
		}
		values[SubCopy2] = Text(s.Body)
	case ShapeFaq:
		for i, faq := range faqs {
			if i >= row.Shape.Count {
				break
			}
			values[QuestionName(i+1)] = Text(faq.Question)
			values[AnswerName(i+1)] = Text(faq.Answer)
		}
		values[SubCopy2] = Text(s.Body)
	default:
		return nil, Errorf(EINTERNAL, "row %s has unknown shape %d", row.Name, row.Shape.Kind)
	}
	if row.Shape.Link {
		values[SubLink] = Text("")
	}

	return declaredGroup(row, values)
}

// clearRow blanks every declared sub-field of a row.
func clearRow(row Row) Group {
	fields := row.SubFields()
	g := make(Group, 0, len(fields))
	for _, f := range fields {
		var v Value = Text("")
		if f.Type == TypeImage {
			v = NoMedia
		}
		g = append(g, SubValue{Name: f.Name, Value: v})
	}
	return g
}

// declaredGroup orders values by the row's declaration and rejects any
// value the row does not declare.
func declaredGroup(row Row, values map[string]Value) (Group, error) {
	for name := range values {
		if !row.Declares(name) {
			return nil, Errorf(EMISMATCH, "row %s (%s) does not declare sub-field %q", row.Name, row.Key, name)
		}
	}

	fields := row.SubFields()
	g := make(Group, 0, len(values))
	for _, f := range fields {
		if v, ok := values[f.Name]; ok {
			g = append(g, SubValue{Name: f.Name, Value: v})
		}
	}
	return g, nil
}
