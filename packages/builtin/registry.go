package builtin

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/timestamps"
)

var (
	// ErrUnknownFunction is returned for names that are not registered.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrSyntax is returned when an expression cannot be parsed.
	ErrSyntax = errors.New("syntax error")
)

// Func is a registered function. Arguments arrive untyped and are checked by
// the function itself.
type Func func(args []any) (any, error)

// Function describes one registered function.
type Function struct {
	Name        string // qualified, e.g. "numbers.gdc"
	Signature   string
	Description string
	Fn          Func
}

// Namespace returns the part of the name before the first dot.
func (f *Function) Namespace() string {
	ns, _, _ := strings.Cut(f.Name, ".")
	return ns
}

// Registry holds the named functions. A registry built WithSeed shares one
// pseudo-random generator and must not be used from several goroutines at
// once.
type Registry struct {
	funcs         map[string]*Function
	random        func() float64
	now           func() time.Time
	defaultFormat timestamps.Format
	timestamps    *timestamps.Formatter
}

// Option configures a Registry.
type Option func(*Registry)

// WithSeed makes every random function deterministic.
func WithSeed(seed uint64) Option {
	return func(r *Registry) {
		r.random = rand.New(rand.NewPCG(seed, seed)).Float64
	}
}

// WithRandom replaces the uniform [0, 1) source.
func WithRandom(next func() float64) Option {
	return func(r *Registry) {
		r.random = next
	}
}

// WithClock replaces the wall clock used by timestamps.now and
// timestamps.fromNow.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithDefaultFormat sets the format used when a timestamp call omits one.
func WithDefaultFormat(f timestamps.Format) Option {
	return func(r *Registry) {
		r.defaultFormat = f
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs:         make(map[string]*Function),
		random:        rand.Float64,
		now:           time.Now,
		defaultFormat: timestamps.DefaultFormat,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.timestamps = timestamps.NewFormatter(timestamps.WithClock(r.now))
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.registerTimestamps()
	r.registerNumbers()
	r.registerColors()
}

// Register adds or replaces a function.
func (r *Registry) Register(name, signature, description string, fn Func) {
	r.funcs[name] = &Function{
		Name:        name,
		Signature:   signature,
		Description: description,
		Fn:          fn,
	}
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (*Function, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Functions returns every registered function sorted by name. A non-empty
// namespace restricts the list.
func (r *Registry) Functions(namespace string) []*Function {
	out := make([]*Function, 0, len(r.funcs))
	for _, fn := range r.funcs {
		if namespace != "" && fn.Namespace() != namespace {
			continue
		}
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke calls the named function with Go values.
func (r *Registry) Invoke(name string, args ...any) (any, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn.Fn(args)
}

// Call parses and evaluates an expression such as `numbers.gdc(12, 18)`.
func (r *Registry) Call(expr string) (any, error) {
	name, args, err := ParseCall(expr)
	if err != nil {
		return nil, err
	}
	return r.Invoke(name, args...)
}
