package services

import (
	"context"
	"regexp"

	"github.com/samber/lo"

	"github.com/renato0307/hookline/internal/domain"
	"github.com/renato0307/hookline/internal/logging"
	"github.com/renato0307/hookline/internal/ports"
)

// Rule names reported in domain.Attribution
const (
	RuleSubagentLaunch  = "subagent-launch"
	RuleTermination     = "termination"
	RuleProcessOverride = "process-override"
	RulePayloadAgent    = "payload-agent"
	RulePathAgent       = "path-agent"
	RuleRegistry        = "registry"
)

// agentPathPattern extracts <name> from ".../agents/<name>/..."
var agentPathPattern = regexp.MustCompile(`[/\\]agents[/\\]([^/\\]+)`)

// AttributionRule is one step of the attribution chain.
// Match must not have side effects; binding is done by the resolver.
type AttributionRule struct {
	Name  string
	Match func(event *domain.HookEvent) (agent string, ok bool)
}

// AttributionConfig holds the knobs the default rule chain depends on
type AttributionConfig struct {
	PrimaryAgent   string
	DelegateTool   string
	TerminalEvents []string
	// AgentOverride is the agent identity the host set for this process, if any
	AgentOverride string
}

// AttributionResolver decides which agent an event belongs to and keeps the
// session registry in step with that decision
type AttributionResolver struct {
	registry     ports.SessionRegistry
	primaryAgent string
	rules        []AttributionRule
}

// NewAttributionResolver creates a resolver using DefaultRules
func NewAttributionResolver(registry ports.SessionRegistry, cfg AttributionConfig) *AttributionResolver {
	return NewAttributionResolverWithRules(registry, cfg.PrimaryAgent, DefaultRules(cfg))
}

// NewAttributionResolverWithRules creates a resolver with a custom rule chain
func NewAttributionResolverWithRules(registry ports.SessionRegistry, primaryAgent string, rules []AttributionRule) *AttributionResolver {
	return &AttributionResolver{
		registry:     registry,
		primaryAgent: primaryAgent,
		rules:        rules,
	}
}

// DefaultRules returns the attribution chain in precedence order.
// Host-driven signals (tool launches, stop events) outrank the environment,
// which outranks payload and path heuristics.
func DefaultRules(cfg AttributionConfig) []AttributionRule {
	return []AttributionRule{
		{Name: RuleSubagentLaunch, Match: matchSubagentLaunch(cfg.DelegateTool)},
		{Name: RuleTermination, Match: matchTermination(cfg.TerminalEvents, cfg.PrimaryAgent)},
		{Name: RuleProcessOverride, Match: matchProcessOverride(cfg.AgentOverride)},
		{Name: RulePayloadAgent, Match: matchPayloadAgent},
		{Name: RulePathAgent, Match: matchPathAgent},
	}
}

// Resolve evaluates the chain top to bottom; the first matching rule wins and
// its agent is bound to the session. With no match the registry's current
// binding (or the primary agent) is used. Registry failures never surface.
func (r *AttributionResolver) Resolve(ctx context.Context, event *domain.HookEvent) domain.Attribution {
	for _, rule := range r.rules {
		agent, ok := rule.Match(event)
		if !ok {
			continue
		}

		logging.Logger.Debugw("Attribution rule matched",
			"rule", rule.Name,
			"session_id", event.SessionID,
			"agent", agent)

		bound := true
		if err := r.registry.Set(ctx, event.SessionID, agent); err != nil {
			bound = false
			logging.Logger.Warnw("Failed to update session registry",
				"session_id", event.SessionID,
				"agent", agent,
				"error", err)
		}

		return domain.Attribution{Agent: agent, Rule: rule.Name, Bound: bound}
	}

	agent := r.registry.Get(ctx, event.SessionID, r.primaryAgent)
	logging.Logger.Debugw("No attribution rule matched, using registry",
		"session_id", event.SessionID,
		"agent", agent)

	return domain.Attribution{Agent: agent, Rule: RuleRegistry}
}

func matchSubagentLaunch(delegateTool string) func(*domain.HookEvent) (string, bool) {
	return func(event *domain.HookEvent) (string, bool) {
		if event.ToolName() != delegateTool {
			return "", false
		}
		subagent := event.SubagentType()
		return subagent, subagent != ""
	}
}

func matchTermination(terminalEvents []string, primaryAgent string) func(*domain.HookEvent) (string, bool) {
	return func(event *domain.HookEvent) (string, bool) {
		return primaryAgent, lo.Contains(terminalEvents, event.Kind)
	}
}

func matchProcessOverride(override string) func(*domain.HookEvent) (string, bool) {
	return func(*domain.HookEvent) (string, bool) {
		return override, override != ""
	}
}

func matchPayloadAgent(event *domain.HookEvent) (string, bool) {
	agent := event.AgentType()
	return agent, agent != ""
}

func matchPathAgent(event *domain.HookEvent) (string, bool) {
	m := agentPathPattern.FindStringSubmatch(event.Cwd())
	if m == nil {
		return "", false
	}
	return m[1], true
}
