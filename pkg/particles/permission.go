package particles

import (
	"math"
)

const DefaultPermissionPrefix = "playerparticles."

//Unlimited is returned by MaxAllowedEffects for actors with the unlimited override
const Unlimited = math.MaxInt

//PermissionKind is a family of permission nodes
type PermissionKind int

const (
	PermEffect PermissionKind = iota
	PermStyle
	PermFixed
	PermFixedUnlimited
	PermFixedClear
	PermReload
	PermOverride
	PermGUI
	PermParticlesUnlimited
	PermGroupsUnlimited
)

var permissionPath = [...]string{
	"effect",
	"style",
	"fixed",
	"fixed.unlimited",
	"fixed.clear",
	"reload",
	"override",
	"gui",
	"particles.unlimited",
	"groups.unlimited",
}

//Policy resolves per actor permissions and quotas against the configured settings.
//Every check fails closed.
type Policy struct {
	settings Settings
	registry *Registry
}

func NewPolicy(s Settings, r *Registry) *Policy {
	if s.PermissionPrefix == "" {
		s.PermissionPrefix = DefaultPermissionPrefix
	}
	return &Policy{settings: s, registry: r}
}

//Node builds the permission node for kind, with an optional sub key
//(e.g. playerparticles.effect.flame)
func (p *Policy) Node(kind PermissionKind, sub string) string {
	n := p.settings.PermissionPrefix + permissionPath[kind]
	if sub != "" {
		n += "." + sub
	}
	return n
}

func (p *Policy) check(caps Capabilities, kind PermissionKind, sub string) bool {
	if caps == nil {
		return false
	}
	return caps.HasPermission(p.Node(kind, sub))
}

func (p *Policy) IsEffectAllowed(caps Capabilities, e Effect) bool {
	if !e.Valid() {
		return false
	}
	return p.check(caps, PermEffect, e.String())
}

func (p *Policy) IsStyleAllowed(caps Capabilities, s Style) bool {
	if s == nil {
		return false
	}
	return p.check(caps, PermStyle, s.Name())
}

//quotaReached is the one rule behind every quota: the unlimited override means no
//limit, otherwise the count is compared against the configured quota
func (p *Policy) quotaReached(caps Capabilities, unlimited PermissionKind, count, quota int) bool {
	if caps == nil {
		return true
	}
	if p.check(caps, unlimited, "") {
		return false
	}
	if quota < 0 {
		quota = 0
	}
	return count >= quota
}

//HasReachedMaxActiveEffects reports whether the actor may not add another active effect
func (p *Policy) HasReachedMaxActiveEffects(st *ActorState, caps Capabilities) bool {
	if st == nil {
		return true
	}
	return p.quotaReached(caps, PermParticlesUnlimited, st.ActiveCount(), p.settings.MaxParticles)
}

//HasReachedMaxGroups reports whether the actor may not save another group
func (p *Policy) HasReachedMaxGroups(st *ActorState, caps Capabilities) bool {
	if st == nil {
		return true
	}
	return p.quotaReached(caps, PermGroupsUnlimited, st.GroupCount(), p.settings.MaxGroups)
}

//HasReachedMaxFixedEffects reports whether the actor may not create another fixed effect
func (p *Policy) HasReachedMaxFixedEffects(st *ActorState, caps Capabilities) bool {
	if st == nil {
		return true
	}
	return p.quotaReached(caps, PermFixedUnlimited, st.FixedCount(), p.settings.MaxFixedEffects)
}

func (p *Policy) CanSaveGroups(caps Capabilities) bool {
	if caps == nil {
		return false
	}
	if p.check(caps, PermGroupsUnlimited, "") {
		return true
	}
	return p.settings.MaxGroups != 0
}

//MaxAllowedEffects returns the configured quota or Unlimited
func (p *Policy) MaxAllowedEffects(caps Capabilities) int {
	if caps == nil {
		return 0
	}
	if p.check(caps, PermParticlesUnlimited, "") {
		return Unlimited
	}
	if p.settings.MaxParticles < 0 {
		return 0
	}
	return p.settings.MaxParticles
}

func (p *Policy) MaxFixedEffectDistance() int {
	return p.settings.MaxFixedEffectCreationDistance
}

func (p *Policy) IsWorldEnabled(world string) bool {
	for _, v := range p.settings.DisabledWorlds {
		if v == world {
			return false
		}
	}
	return true
}

func (p *Policy) DisabledWorlds() []string {
	return append([]string(nil), p.settings.DisabledWorlds...)
}

func (p *Policy) CanUseFixedEffects(caps Capabilities) bool {
	return p.check(caps, PermFixed, "")
}

func (p *Policy) CanClearFixedEffects(caps Capabilities) bool {
	return p.check(caps, PermFixedClear, "")
}

func (p *Policy) CanOpenGUI(caps Capabilities) bool {
	return p.check(caps, PermGUI, "")
}

func (p *Policy) CanReload(caps Capabilities) bool {
	return p.check(caps, PermReload, "")
}

//CanOverride reports whether caps may edit other actors' particles; the console always can
func (p *Policy) CanOverride(caps Capabilities) bool {
	if caps == Console {
		return true
	}
	return p.check(caps, PermOverride, "")
}

//AllowedEffects lists the supported effects caps may use, in catalogue order
func (p *Policy) AllowedEffects(caps Capabilities) []Effect {
	var out []Effect
	for _, e := range Effects() {
		if p.IsEffectAllowed(caps, e) {
			out = append(out, e)
		}
	}
	return out
}

//AllowedStyles lists the registered styles caps may use, in registration order
func (p *Policy) AllowedStyles(caps Capabilities) []Style {
	return p.allowedStyles(caps, false)
}

//AllowedFixableStyles is AllowedStyles restricted to styles that can be fixed
func (p *Policy) AllowedFixableStyles(caps Capabilities) []Style {
	return p.allowedStyles(caps, true)
}

func (p *Policy) allowedStyles(caps Capabilities, fixable bool) []Style {
	if p.registry == nil {
		return nil
	}
	var out []Style
	for _, s := range p.registry.List() {
		if fixable && !s.Fixable() {
			continue
		}
		if p.IsStyleAllowed(caps, s) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Policy) AllowedEffectNames(caps Capabilities) []string {
	var out []string
	for _, e := range p.AllowedEffects(caps) {
		out = append(out, e.String())
	}
	return out
}

func (p *Policy) AllowedStyleNames(caps Capabilities) []string {
	var out []string
	for _, s := range p.AllowedStyles(caps) {
		out = append(out, s.Name())
	}
	return out
}

func (p *Policy) AllowedFixableStyleNames(caps Capabilities) []string {
	var out []string
	for _, s := range p.AllowedFixableStyles(caps) {
		out = append(out, s.Name())
	}
	return out
}

//CanDisplay is the display time re-check for an active effect: the world must be
//enabled and the owner must still hold both the effect and the style grant
func (p *Policy) CanDisplay(a *Actor, world string, cfg *EffectConfig) bool {
	if a == nil || cfg == nil {
		return false
	}
	if !p.IsWorldEnabled(world) {
		return false
	}
	return p.IsEffectAllowed(a.Caps, cfg.Effect) && p.IsStyleAllowed(a.Caps, cfg.Style)
}
