// Package permissions holds the per-route access rules of the API. Routes are matched by their
// chi pattern, so "/v1/rooms/{id}" covers every room.
package permissions

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed permissions.yaml
var policyData []byte

var (
	ErrInvalidRoute = errors.New("invalid route")
	ErrUnknownRole  = errors.New("unknown role")
)

var (
	knownRoles   = []string{constant.RoleManager, constant.RoleFrontDesk}
	knownMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
)

// Rule is the access rule of one route. A rule without roles admits any signed in staff.
type Rule struct {
	Method string
	Path   string
	Roles  []string
	Public bool
}

// Allows reports whether role may call the route.
func (r Rule) Allows(role string) bool {
	return len(r.Roles) == 0 || slices.Contains(r.Roles, role)
}

type Policy struct {
	// Open skips role checks for every route.
	Open  bool
	rules map[string]Rule
}

// Lookup returns the rule for a route pattern; unlisted routes get the zero rule.
func (p *Policy) Lookup(path, method string) Rule {
	if rule, ok := p.rules[key(method, path)]; ok {
		return rule
	}

	return Rule{Method: strings.ToUpper(method), Path: normalize(path)}
}

// Rules lists every rule ordered by path, then method.
func (p *Policy) Rules() []Rule {
	rules := slices.Collect(maps.Values(p.rules))
	slices.SortFunc(rules, func(a, b Rule) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}

		return strings.Compare(a.Method, b.Method)
	})

	return rules
}

// Len is the number of routes with a rule.
func (p *Policy) Len() int {
	return len(p.rules)
}

type document struct {
	Open   bool                `yaml:"open"`
	Public []string            `yaml:"public"`
	Roles  map[string][]string `yaml:"roles"`
}

// Get parses the embedded policy.
func Get() (*Policy, error) {
	policy, err := Parse(policyData)
	if err != nil {
		return nil, fmt.Errorf("embedded permissions: %w", err)
	}

	log.Info().Int("routes", policy.Len()).Bool("open", policy.Open).Msg("Loaded route permissions")

	return policy, nil
}

// Parse reads a policy document. Routes are written as "METHOD /path"; a route cannot be both
// public and restricted to roles.
func Parse(data []byte) (*Policy, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse permissions: %w", err)
	}

	policy := &Policy{Open: doc.Open, rules: map[string]Rule{}}

	for _, route := range doc.Public {
		rule, err := parseRoute(route)
		if err != nil {
			return nil, err
		}

		rule.Public = true
		policy.rules[key(rule.Method, rule.Path)] = rule
	}

	for _, role := range slices.Sorted(maps.Keys(doc.Roles)) {
		if !slices.Contains(knownRoles, role) {
			return nil, fmt.Errorf("%w %q", ErrUnknownRole, role)
		}

		for _, route := range doc.Roles[role] {
			parsed, err := parseRoute(route)
			if err != nil {
				return nil, err
			}

			rule := policy.rules[key(parsed.Method, parsed.Path)]
			if rule.Public {
				return nil, fmt.Errorf("%w %q: listed as public and for %s", ErrInvalidRoute, route, role)
			}

			parsed.Roles = append(rule.Roles, role)
			policy.rules[key(parsed.Method, parsed.Path)] = parsed
		}
	}

	return policy, nil
}

func parseRoute(route string) (Rule, error) {
	method, path, ok := strings.Cut(strings.TrimSpace(route), " ")
	method = strings.ToUpper(method)
	path = strings.TrimSpace(path)

	if !ok || !slices.Contains(knownMethods, method) || !strings.HasPrefix(path, "/") {
		return Rule{}, fmt.Errorf("%w %q, expected \"METHOD /path\"", ErrInvalidRoute, route)
	}

	return Rule{Method: method, Path: normalize(path)}, nil
}

func key(method, path string) string {
	return strings.ToUpper(method) + " " + normalize(path)
}

func normalize(path string) string {
	if path == "/" {
		return path
	}

	return strings.TrimSuffix(path, "/")
}
