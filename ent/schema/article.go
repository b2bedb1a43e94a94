// ent/schema/article.go

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for the Article entity.
type Article struct {
	ent.Schema
}

// Annotations of the Article.
func (Article) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("articles table"),
	}
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now),
		field.String("title").Comment("article title").NotEmpty(),
		field.String("slug").
			Comment("URL identifier, fixed at creation").
			NotEmpty().
			Unique().
			Immutable(),
		field.Text("content").Comment("article body HTML").Optional(),
		field.Text("excerpt").Comment("short teaser shown in listings").Optional(),
		field.String("cover_image").Comment("cover image URL").Optional(),
		field.String("category").Optional(),
		field.JSON("tags", []string{}).Optional(),
		field.Enum("status").Values("draft", "published", "archived").Default("draft"),
		field.Int("views").Default(0).NonNegative(),
		field.Time("published_at").
			Comment("set once, on the first transition to published").
			Optional().
			Nillable(),
		// Author is resolved through a secondary lookup, not an edge, so
		// articles survive independent of the users table.
		field.Uint("author_id"),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("category"),
		index.Fields("author_id"),
	}
}
