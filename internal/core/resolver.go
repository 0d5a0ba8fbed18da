package core

import (
	"reflect"
	"slices"
	"sync"
)

// Resolver holds a proxy's stub rules and decides how each call is answered.
type Resolver struct {
	mu    sync.Mutex
	rules []*Rule
}

// Register adds a rule. Newer rules take precedence over older ones.
func (r *Resolver) Register(rule *Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule)
}

// Resolve runs the rules matching inv and returns the winning response.
// answered is false when no rule has a response for the call.
//
// Every matching rule runs its Do callbacks, oldest first, and rules without responses
// also run their captures. Then the newest matching rule with responses runs its captures,
// produces its next response and runs its AndDoes callbacks.
// A failing capture leaves the response sequence where it was.
// A panicking response panics here, in the caller's goroutine.
func (r *Resolver) Resolve(inv *Invocation) ([]any, bool, error) {
	var matched []*Rule

	for _, rule := range r.RulesFor(inv.member.Name) {
		if rule.matches(inv) {
			matched = append(matched, rule)
		}
	}

	for _, rule := range matched {
		if !rule.answers() {
			err := rule.runCaptures(inv)
			if err != nil {
				return nil, false, err
			}
		}

		actions, _ := rule.callbacks()
		for _, action := range actions {
			action(inv)
		}
	}

	for _, rule := range slices.Backward(matched) {
		if !rule.answers() {
			continue
		}

		err := rule.runCaptures(inv)
		if err != nil {
			return nil, false, err
		}

		// responses are never removed, so a rule that answers keeps a current response
		resp := rule.next()

		values, err := resp.produce(inv)
		if err != nil {
			return nil, false, err
		}

		_, andDoes := rule.callbacks()
		for _, andDo := range andDoes {
			andDo(inv)
		}

		return values, true, nil
	}

	return nil, false, nil
}

// Rules returns every registered rule, oldest first.
func (r *Resolver) Rules() []*Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.rules)
}

// RulesFor returns the rules registered for the named member, oldest first.
func (r *Resolver) RulesFor(member string) []*Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rules []*Rule

	for _, rule := range r.rules {
		if rule.member.Name == member {
			rules = append(rules, rule)
		}
	}

	return rules
}

// registerImplicit adds an auto-value rule, replacing an earlier one for the same keys.
func (r *Resolver) registerImplicit(rule *Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = slices.DeleteFunc(r.rules, func(existing *Rule) bool {
		return existing.implicit && existing.member == rule.member &&
			reflect.DeepEqual(existing.expected, rule.expected)
	})
	r.rules = append(r.rules, rule)
}
