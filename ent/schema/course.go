// ent/schema/course.go

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course holds the schema definition for the Course entity.
type Course struct {
	ent.Schema
}

// Annotations of the Course.
func (Course) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("courses table"),
	}
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now),
		field.String("title").NotEmpty(),
		field.String("slug").NotEmpty().Unique().Immutable(),
		field.String("summary").Optional(),
		field.Text("description_md").Comment("authored markdown").Optional(),
		field.Text("description_html").Comment("sanitized rendering of description_md").Optional(),
		field.String("cover_image").Optional(),
		field.String("category").Optional(),
		field.Enum("level").Values("beginner", "intermediate", "advanced").Default("beginner"),
		field.Enum("status").Values("draft", "published", "archived").Default("draft"),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("category"),
	}
}
