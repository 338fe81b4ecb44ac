package usecase_test

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(companyID string) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		if companyID == "" || c.ID == companyID {
			list = append(list, c)
		}
	}
	return list, nil
}

type fakeLicenseRepo struct {
	licenses   map[string]*entity.License
	lastFilter repository.LicenseFilter
}

func newFakeLicenseRepo() *fakeLicenseRepo {
	return &fakeLicenseRepo{licenses: map[string]*entity.License{}}
}

func (r *fakeLicenseRepo) Create(l *entity.License) error {
	r.licenses[l.ID] = l
	return nil
}

func (r *fakeLicenseRepo) GetByID(id string) (*entity.License, error) {
	return r.licenses[id], nil
}

func (r *fakeLicenseRepo) Update(l *entity.License) error {
	r.licenses[l.ID] = l
	return nil
}

func (r *fakeLicenseRepo) Delete(id string) error {
	delete(r.licenses, id)
	return nil
}

func (r *fakeLicenseRepo) List(filter repository.LicenseFilter) ([]*entity.License, error) {
	r.lastFilter = filter
	var list []*entity.License
	for _, l := range r.licenses {
		if filter.CompanyID != "" && l.CompanyID != filter.CompanyID {
			continue
		}
		if filter.LicenseType != "" && l.LicenseType != filter.LicenseType {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		list = append(list, l)
	}
	return list, nil
}

func (r *fakeLicenseRepo) ListExpiringOn(date time.Time) ([]*entity.License, error) {
	var list []*entity.License
	for _, l := range r.licenses {
		if l.ExpirationDate.Equal(date) {
			list = append(list, l)
		}
	}
	return list, nil
}

type fakeRemittanceRepo struct {
	remittances map[string]*entity.Remittance
}

func newFakeRemittanceRepo() *fakeRemittanceRepo {
	return &fakeRemittanceRepo{remittances: map[string]*entity.Remittance{}}
}

func (r *fakeRemittanceRepo) Create(rem *entity.Remittance) error {
	r.remittances[rem.ID] = rem
	return nil
}

func (r *fakeRemittanceRepo) GetByID(id string) (*entity.Remittance, error) {
	return r.remittances[id], nil
}

func (r *fakeRemittanceRepo) Update(rem *entity.Remittance) error {
	r.remittances[rem.ID] = rem
	return nil
}

func (r *fakeRemittanceRepo) Delete(id string) error {
	delete(r.remittances, id)
	return nil
}

func (r *fakeRemittanceRepo) List(filter repository.RemittanceFilter) ([]*entity.Remittance, error) {
	var list []*entity.Remittance
	for _, rem := range r.remittances {
		if filter.CompanyID != "" && rem.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Status != "" && rem.Status != filter.Status {
			continue
		}
		if filter.Year != 0 && rem.Year != filter.Year {
			continue
		}
		if filter.Month != 0 && rem.Month != filter.Month {
			continue
		}
		list = append(list, rem)
	}
	return list, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) ListActiveByRoles(roles []string) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if u.Status != "active" {
			continue
		}
		for _, role := range roles {
			if u.Role == role {
				list = append(list, u)
				break
			}
		}
	}
	return list, nil
}

type fakeAuditRepo struct {
	entries    []*entity.AuditLog
	lastFilter repository.AuditLogFilter
	lastLimit  int
	lastOffset int
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error {
	r.entries = append(r.entries, l)
	return nil
}

func (r *fakeAuditRepo) List(filter repository.AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error) {
	r.lastFilter = filter
	r.lastLimit = limit
	r.lastOffset = offset
	var list []*entity.AuditLog
	for _, l := range r.entries {
		if filter.UserID != "" && l.UserID != filter.UserID {
			continue
		}
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.EntityType != "" && l.EntityType != filter.EntityType {
			continue
		}
		list = append(list, l)
	}
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Actores y helpers compartidos
// ──────────────────────────────────────────────────────────────────────────────

var (
	adminActor   = entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin, IP: "10.0.0.1"}
	officerActor = entity.Actor{UserID: "officer-1", Role: entity.RoleComplianceOfficer, IP: "10.0.0.2"}
	clientActor  = entity.Actor{UserID: "client-1", CompanyID: "co-1", Role: entity.RoleClient, IP: "10.0.0.3"}
	orphanClient = entity.Actor{UserID: "client-2", Role: entity.RoleClient, IP: "10.0.0.4"}
)

func testRecorder(repo *fakeAuditRepo) *audit.Recorder {
	return audit.NewRecorder(repo, zerolog.Nop())
}

func testCompany(id, name string) *entity.Company {
	return &entity.Company{ID: id, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}
