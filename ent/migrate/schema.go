// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Comment: "article title"},
		{Name: "slug", Type: field.TypeString, Unique: true, Comment: "URL identifier, fixed at creation"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "article body HTML"},
		{Name: "excerpt", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "short teaser shown in listings"},
		{Name: "cover_image", Type: field.TypeString, Nullable: true, Comment: "cover image URL"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "views", Type: field.TypeInt, Default: 0},
		{Name: "published_at", Type: field.TypeTime, Nullable: true, Comment: "set once, on the first transition to published"},
		{Name: "author_id", Type: field.TypeUint},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Comment:    "articles table",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_status",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[10]},
			},
			{
				Name:    "article_category",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[8]},
			},
			{
				Name:    "article_author_id",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[13]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "description_md", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "authored markdown"},
		{Name: "description_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "sanitized rendering of description_md"},
		{Name: "cover_image", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Comment:    "courses table",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[11]},
			},
			{
				Name:    "course_category",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[9]},
			},
		},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUint},
		{Name: "course_id", Type: field.TypeUint},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Comment:    "enrollments table",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrollment_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{EnrollmentsColumns[2], EnrollmentsColumns[3]},
			},
			{
				Name:    "enrollment_course_id",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "nickname", Type: field.TypeString, Nullable: true},
		{Name: "avatar", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "instructor", "student"}, Default: "student"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "banned"}, Default: "active"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "accounts table",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		CoursesTable,
		EnrollmentsTable,
		UsersTable,
	}
)

func init() {
}
