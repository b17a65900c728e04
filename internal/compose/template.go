package compose

import (
	"strings"

	"supportbot/internal/domain/entities"
)

// TemplateContext carries the user-profile values available to
// operator-authored templates. Absent values substitute as empty strings.
type TemplateContext struct {
	Email      string
	UUID       string
	MemberCode string
}

// ContextFromProfile builds a TemplateContext from a profile, which may be
// nil (every token then renders empty).
func ContextFromProfile(p *entities.Profile) TemplateContext {
	if p == nil {
		return TemplateContext{}
	}
	return TemplateContext{
		Email:      p.Email,
		UUID:       p.GameUUID,
		MemberCode: p.MemberCode,
	}
}

// ApplyTemplate substitutes the three recognized placeholder tokens with
// values from ctx. Any other text, including unrecognized {{...}}-shaped
// tokens, passes through unchanged, so applying the result again is a no-op.
func ApplyTemplate(tpl string, ctx TemplateContext) string {
	out := strings.ReplaceAll(tpl, "{{email}}", ctx.Email)
	out = strings.ReplaceAll(out, "{{uuid}}", ctx.UUID)
	return strings.ReplaceAll(out, "{{member_code}}", ctx.MemberCode)
}
