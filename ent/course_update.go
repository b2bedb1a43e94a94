// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coursewave/coursewave-app/ent/course"
	"github.com/coursewave/coursewave-app/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks     []Hook
	mutation  *CourseMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourseUpdate) SetCreatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCreatedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableUpdatedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CourseUpdate) SetSummary(v string) *CourseUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSummary(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CourseUpdate) ClearSummary() *CourseUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetDescriptionMd sets the "description_md" field.
func (_u *CourseUpdate) SetDescriptionMd(v string) *CourseUpdate {
	_u.mutation.SetDescriptionMd(v)
	return _u
}

// SetNillableDescriptionMd sets the "description_md" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescriptionMd(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescriptionMd(*v)
	}
	return _u
}

// ClearDescriptionMd clears the value of the "description_md" field.
func (_u *CourseUpdate) ClearDescriptionMd() *CourseUpdate {
	_u.mutation.ClearDescriptionMd()
	return _u
}

// SetDescriptionHTML sets the "description_html" field.
func (_u *CourseUpdate) SetDescriptionHTML(v string) *CourseUpdate {
	_u.mutation.SetDescriptionHTML(v)
	return _u
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescriptionHTML(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescriptionHTML(*v)
	}
	return _u
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (_u *CourseUpdate) ClearDescriptionHTML() *CourseUpdate {
	_u.mutation.ClearDescriptionHTML()
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *CourseUpdate) SetCoverImage(v string) *CourseUpdate {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCoverImage(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// ClearCoverImage clears the value of the "cover_image" field.
func (_u *CourseUpdate) ClearCoverImage() *CourseUpdate {
	_u.mutation.ClearCoverImage()
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdate) SetCategory(v string) *CourseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCategory(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CourseUpdate) ClearCategory() *CourseUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdate) SetLevel(v course.Level) *CourseUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLevel(v *course.Level) *CourseUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdate) SetStatus(v course.Status) *CourseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStatus(v *course.Status) *CourseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := course.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Course.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := course.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Course.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CourseUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CourseUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUint))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(course.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(course.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionMd(); ok {
		_spec.SetField(course.FieldDescriptionMd, field.TypeString, value)
	}
	if _u.mutation.DescriptionMdCleared() {
		_spec.ClearField(course.FieldDescriptionMd, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionHTML(); ok {
		_spec.SetField(course.FieldDescriptionHTML, field.TypeString, value)
	}
	if _u.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(course.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(course.FieldCoverImage, field.TypeString, value)
	}
	if _u.mutation.CoverImageCleared() {
		_spec.ClearField(course.FieldCoverImage, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(course.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeEnum, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CourseMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourseUpdateOne) SetCreatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCreatedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableUpdatedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CourseUpdateOne) SetSummary(v string) *CourseUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSummary(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CourseUpdateOne) ClearSummary() *CourseUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetDescriptionMd sets the "description_md" field.
func (_u *CourseUpdateOne) SetDescriptionMd(v string) *CourseUpdateOne {
	_u.mutation.SetDescriptionMd(v)
	return _u
}

// SetNillableDescriptionMd sets the "description_md" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescriptionMd(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescriptionMd(*v)
	}
	return _u
}

// ClearDescriptionMd clears the value of the "description_md" field.
func (_u *CourseUpdateOne) ClearDescriptionMd() *CourseUpdateOne {
	_u.mutation.ClearDescriptionMd()
	return _u
}

// SetDescriptionHTML sets the "description_html" field.
func (_u *CourseUpdateOne) SetDescriptionHTML(v string) *CourseUpdateOne {
	_u.mutation.SetDescriptionHTML(v)
	return _u
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescriptionHTML(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescriptionHTML(*v)
	}
	return _u
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (_u *CourseUpdateOne) ClearDescriptionHTML() *CourseUpdateOne {
	_u.mutation.ClearDescriptionHTML()
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *CourseUpdateOne) SetCoverImage(v string) *CourseUpdateOne {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCoverImage(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// ClearCoverImage clears the value of the "cover_image" field.
func (_u *CourseUpdateOne) ClearCoverImage() *CourseUpdateOne {
	_u.mutation.ClearCoverImage()
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdateOne) SetCategory(v string) *CourseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCategory(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CourseUpdateOne) ClearCategory() *CourseUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdateOne) SetLevel(v course.Level) *CourseUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLevel(v *course.Level) *CourseUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdateOne) SetStatus(v course.Status) *CourseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStatus(v *course.Status) *CourseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := course.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Course.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := course.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Course.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CourseUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CourseUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUint))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(course.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(course.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionMd(); ok {
		_spec.SetField(course.FieldDescriptionMd, field.TypeString, value)
	}
	if _u.mutation.DescriptionMdCleared() {
		_spec.ClearField(course.FieldDescriptionMd, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionHTML(); ok {
		_spec.SetField(course.FieldDescriptionHTML, field.TypeString, value)
	}
	if _u.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(course.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(course.FieldCoverImage, field.TypeString, value)
	}
	if _u.mutation.CoverImageCleared() {
		_spec.ClearField(course.FieldCoverImage, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(course.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeEnum, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
