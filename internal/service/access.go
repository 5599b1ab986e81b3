// internal/service/access.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

// Actor is the authenticated principal handed in by the transport layer. Role
// is the legacy global role; operations scoped to an organization consult the
// per-organization membership role instead.
type Actor struct {
	UserID uuid.UUID
	Role   model.UserRole
}

// AccessPolicy holds the role and visibility predicates consulted by every
// mutating and reading operation.
type AccessPolicy struct {
	orgs repository.OrganizationRepositoryIface
}

func NewAccessPolicy(orgs repository.OrganizationRepositoryIface) *AccessPolicy {
	return &AccessPolicy{orgs: orgs}
}

// RequireMembership fails Forbidden when the user holds no membership in the
// organization.
func (p *AccessPolicy) RequireMembership(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error) {
	m, err := p.orgs.FindMembership(ctx, userID, orgID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.Forbidden("you are not a member of this organization")
		}
		return nil, err
	}
	return m, nil
}

// RequireRole fails Forbidden unless the membership's role is in the allowed
// set.
func (p *AccessPolicy) RequireRole(m *model.Membership, allowed ...model.OrgRole) error {
	for _, role := range allowed {
		if m.Role == role {
			return nil
		}
	}
	return domain.Forbidden("your role does not permit this action")
}

// CanViewMembers is true unconditionally for PUBLIC organizations; for
// PRIVATE ones the requester must hold a membership.
func (p *AccessPolicy) CanViewMembers(ctx context.Context, org *model.Organization, userID uuid.UUID) (bool, error) {
	if org.Visibility == model.VisibilityPublic {
		return true, nil
	}
	_, err := p.orgs.FindMembership(ctx, userID, org.ID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MaskAssignee hides the real assignee from MEMBER and AUDITOR requesters in
// PRIVATE organizations. The transform applies to the response copy only;
// stored data is untouched.
func MaskAssignee(issue *model.Issue, visibility model.Visibility, requesterRole model.OrgRole) *model.Issue {
	if visibility != model.VisibilityPrivate {
		return issue
	}
	if requesterRole != model.OrgRoleMember && requesterRole != model.OrgRoleAuditor {
		return issue
	}

	masked := *issue
	masked.AssignedToID = nil
	masked.AssigneeMasked = true
	return &masked
}
