package sources

// options holds per-source parser settings.
type options struct {
	columns *Columns
	role    Role
}

// Option configures a catalog source.
type Option func(*options)

// WithColumns overrides the column layout of a source.
func WithColumns(columns Columns) Option {
	return func(o *options) {
		o.columns = &columns
	}
}

// WithRole overrides the role derived from the source ID.
func WithRole(role Role) Option {
	return func(o *options) {
		o.role = role
	}
}

func newOptions(id ID, opts ...Option) *options {
	o := &options{role: id.Role()}
	for _, opt := range opts {
		opt(o)
	}
	if o.columns == nil {
		c := ColumnsFor(id)
		o.columns = &c
	}
	return o
}
