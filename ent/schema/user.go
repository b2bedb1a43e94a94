// ent/schema/user.go

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("accounts table"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now),
		field.String("username").NotEmpty().Unique(),
		field.String("email").NotEmpty().Unique(),
		field.String("password_hash").Sensitive(),
		field.String("nickname").Optional(),
		field.String("avatar").Optional(),
		field.Enum("role").Values("admin", "instructor", "student").Default("student"),
		field.Enum("status").Values("active", "banned").Default("active"),
		field.Time("last_login_at").Optional().Nillable(),
	}
}
