package organization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"carelink/models"
)

// fakeAffRepo is an in-memory AffiliationRepository that mimics the unique
// pending-request index: a second pending request for the same pair fails
// with a duplicate key error, exactly like Mongo would.
type fakeAffRepo struct {
	reqs map[string]*models.AffiliationRequest
	seq  int
}

func newFakeAffRepo() *fakeAffRepo {
	return &fakeAffRepo{reqs: make(map[string]*models.AffiliationRequest)}
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}}}
}

func (f *fakeAffRepo) Create(ctx context.Context, req *models.AffiliationRequest) error {
	for _, r := range f.reqs {
		if r.Status == models.AffiliationPending &&
			r.ProfessionalID == req.ProfessionalID && r.OrganizationID == req.OrganizationID {
			return duplicateKeyErr()
		}
	}
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	cp := *req
	f.reqs[req.ID] = &cp
	return nil
}

func (f *fakeAffRepo) GetByID(ctx context.Context, id string) (*models.AffiliationRequest, error) {
	r, ok := f.reqs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *r
	return &cp, nil
}

func (f *fakeAffRepo) SetStatus(ctx context.Context, id, status, reviewNote string) error {
	r, ok := f.reqs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Status = status
	r.ReviewNote = reviewNote
	return nil
}

func (f *fakeAffRepo) ListByOrganization(ctx context.Context, organizationID, status string) ([]models.AffiliationRequest, error) {
	var out []models.AffiliationRequest
	for _, r := range f.reqs {
		if r.OrganizationID != organizationID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeAffRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.AffiliationRequest, error) {
	var out []models.AffiliationRequest
	for _, r := range f.reqs {
		if r.ProfessionalID == professionalID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeAffRepo) EnsureIndexes() error { return nil }

type fakeOrgRepo struct {
	orgs map[string]*models.Organization
}

func (f *fakeOrgRepo) Create(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = "org-" + org.Name
	}
	cp := *org
	f.orgs[org.ID] = &cp
	return nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrgRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	o, ok := f.orgs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := updates["name"]; ok {
		o.Name = v.(string)
	}
	return nil
}

func (f *fakeOrgRepo) List(ctx context.Context, limit int64) ([]models.Organization, error) {
	var out []models.Organization
	for _, o := range f.orgs {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrgRepo) EnsureIndexes() error { return nil }

type fakeProfRepo struct {
	profs map[string]*models.Professional
}

func (f *fakeProfRepo) Create(ctx context.Context, p *models.Professional) error { return nil }

func (f *fakeProfRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	p, ok := f.profs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return nil
}

func (f *fakeProfRepo) UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) error {
	return nil
}

func (f *fakeProfRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error     { return nil }
func (f *fakeProfRepo) SetPasswordHash(ctx context.Context, id, passwordHash string) error { return nil }
func (f *fakeProfRepo) Delete(ctx context.Context, id string) error                       { return nil }

func (f *fakeProfRepo) Search(ctx context.Context, query, specialty string, limit int64) ([]models.Professional, error) {
	return nil, nil
}

func (f *fakeProfRepo) AddOrganization(ctx context.Context, id, organizationID string) error {
	p, ok := f.profs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, existing := range p.OrganizationIDs {
		if existing == organizationID {
			return nil
		}
	}
	p.OrganizationIDs = append(p.OrganizationIDs, organizationID)
	return nil
}

func (f *fakeProfRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultOrganizationService, *fakeOrgRepo, *fakeProfRepo) {
	orgRepo := &fakeOrgRepo{orgs: map[string]*models.Organization{
		"org-1": {ID: "org-1", Name: "Nairobi West Clinic", AdminUserID: "admin-1"},
	}}
	profRepo := &fakeProfRepo{profs: map[string]*models.Professional{
		"prof-1": {ID: "prof-1", Name: "Dr. Achieng", Specialty: "pediatrics"},
	}}
	svc := &DefaultOrganizationService{
		Repo:             orgRepo,
		AffiliationRepo:  newFakeAffRepo(),
		ProfessionalRepo: profRepo,
	}
	return svc, orgRepo, profRepo
}

func TestRequestAffiliation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "joining the pediatrics wing")
	if err != nil {
		t.Fatalf("RequestAffiliation: %v", err)
	}
	if req.Status != models.AffiliationPending {
		t.Errorf("status = %q, want %q", req.Status, models.AffiliationPending)
	}

	if _, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "again"); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("second request err = %v, want ErrDuplicateRequest", err)
	}
	if _, err := svc.RequestAffiliation(ctx, "prof-1", "org-missing", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown organization err = %v, want ErrNotFound", err)
	}
}

func TestReviewAffiliationApprove(t *testing.T) {
	svc, _, profRepo := newTestService()
	ctx := context.Background()

	req, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "")
	if err != nil {
		t.Fatalf("RequestAffiliation: %v", err)
	}

	reviewed, err := svc.ReviewAffiliation(ctx, req.ID, "admin-1", models.AffiliationApproved, "welcome")
	if err != nil {
		t.Fatalf("ReviewAffiliation: %v", err)
	}
	if reviewed.Status != models.AffiliationApproved {
		t.Errorf("status = %q, want %q", reviewed.Status, models.AffiliationApproved)
	}

	prof := profRepo.profs["prof-1"]
	if len(prof.OrganizationIDs) != 1 || prof.OrganizationIDs[0] != "org-1" {
		t.Errorf("professional organizations = %v, want [org-1]", prof.OrganizationIDs)
	}

	// A settled request cannot be reviewed again.
	if _, err := svc.ReviewAffiliation(ctx, req.ID, "admin-1", models.AffiliationRejected, ""); err == nil {
		t.Error("expected error reviewing a settled request")
	}
}

func TestReviewAffiliationAuthorization(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "")
	if err != nil {
		t.Fatalf("RequestAffiliation: %v", err)
	}

	if _, err := svc.ReviewAffiliation(ctx, req.ID, "someone-else", models.AffiliationApproved, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger review err = %v, want ErrForbidden", err)
	}
	if _, err := svc.ReviewAffiliation(ctx, req.ID, "admin-1", "maybe", ""); err == nil {
		t.Error("expected error for an unknown decision")
	}
}

func TestRejectedRequestCanBeRefiled(t *testing.T) {
	svc, _, profRepo := newTestService()
	ctx := context.Background()

	req, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "")
	if err != nil {
		t.Fatalf("RequestAffiliation: %v", err)
	}
	if _, err := svc.ReviewAffiliation(ctx, req.ID, "admin-1", models.AffiliationRejected, "no openings"); err != nil {
		t.Fatalf("ReviewAffiliation: %v", err)
	}
	if len(profRepo.profs["prof-1"].OrganizationIDs) != 0 {
		t.Error("rejection must not attach the organization")
	}

	if _, err := svc.RequestAffiliation(ctx, "prof-1", "org-1", "second try"); err != nil {
		t.Errorf("refiled request after rejection: %v", err)
	}
}
