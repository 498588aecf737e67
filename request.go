package microauthz

// contextEntry is a single (key, Value) binding in a Request's context, in
// insertion order.
type contextEntry struct {
	key   string
	value Value
}

// Context is a finite, ordered sequence of (key, Value) bindings. Keys are
// compared by exact byte equality; there is no normalization. On duplicate
// keys, Lookup returns the first occurrence — insertion order wins.
type Context struct {
	entries []contextEntry
}

// NewContext builds a Context from the given key/Value pairs, preserving
// the order they are supplied in.
func NewContext(pairs ...KV) Context {
	entries := make([]contextEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = contextEntry{key: p.Key, value: p.Value}
	}
	return Context{entries: entries}
}

// KV is a single key/Value pair, used to build a Context.
type KV struct {
	Key   string
	Value Value
}

// Lookup returns the Value bound to key and true, or the zero Value and
// false if key is absent. A missing key is a distinct signal from a bound
// Null — callers evaluating a Condition must not conflate them.
func (c Context) Lookup(key string) (Value, bool) {
	for _, e := range c.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return Value{}, false
}

// Len reports the number of bindings in c, counting duplicate keys
// individually (as PolicyConfig.MaxContextEntries does).
func (c Context) Len() int { return len(c.entries) }

// Request is the input tuple an Evaluator matches rules against: a
// principal, action, resource, and a bounded context mapping.
type Request struct {
	Principal string
	Action    string
	Resource  string
	Context   Context
}

// NewRequest builds a Request with an empty context.
func NewRequest(principal, action, resource string) Request {
	return Request{Principal: principal, Action: action, Resource: resource}
}

// NewRequestWithContext builds a Request carrying the given context pairs.
func NewRequestWithContext(principal, action, resource string, pairs ...KV) Request {
	return Request{
		Principal: principal,
		Action:    action,
		Resource:  resource,
		Context:   NewContext(pairs...),
	}
}
