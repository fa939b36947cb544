package builtin

func (r *Registry) registerTimestamps() {
	r.Register("timestamps.fromDate", "fromDate(date, format = FULL)",
		"Markup token for a millisecond Unix time", r.tsFromDate)
	r.Register("timestamps.now", "now(format = FULL)",
		"Markup token for the current time", r.tsNow)
	r.Register("timestamps.fromNow", "fromNow(ms, format = FULL)",
		"Markup token for the current time shifted by ms", r.tsFromNow)
}

func (r *Registry) tsFromDate(args []any) (any, error) {
	a := newArgReader("timestamps.fromDate", args)
	date, err := a.number(0, "date")
	if err != nil {
		return nil, err
	}
	format, err := a.format(1, r.defaultFormat)
	if err != nil {
		return nil, err
	}
	return r.timestamps.FromDate(date, format)
}

func (r *Registry) tsNow(args []any) (any, error) {
	a := newArgReader("timestamps.now", args)
	format, err := a.format(0, r.defaultFormat)
	if err != nil {
		return nil, err
	}
	return r.timestamps.Now(format)
}

func (r *Registry) tsFromNow(args []any) (any, error) {
	a := newArgReader("timestamps.fromNow", args)
	ms, err := a.number(0, "ms")
	if err != nil {
		return nil, err
	}
	format, err := a.format(1, r.defaultFormat)
	if err != nil {
		return nil, err
	}
	return r.timestamps.FromNow(ms, format)
}
