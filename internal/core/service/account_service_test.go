package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
	"github.com/footballagentsl/accounts-api/internal/infrastructure/hasher"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

// callLog records the order in which collaborators are invoked.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	if l != nil {
		l.calls = append(l.calls, name)
	}
}

type stubRoleRepo struct {
	log *callLog
	err error
}

var seededIDs = map[string]domain.RoleID{
	domain.RoleAdmin:       1,
	domain.RoleAgent:       2,
	domain.RolePlayer:      3,
	domain.RoleClubManager: 4,
}

func roleName(id domain.RoleID) string {
	for name, rid := range seededIDs {
		if rid == id {
			return name
		}
	}
	return ""
}

func (r *stubRoleRepo) Seed(context.Context) error { return nil }

func (r *stubRoleRepo) Resolve(_ context.Context, name string) (domain.RoleID, error) {
	r.log.add("resolve")
	if r.err != nil {
		return 0, r.err
	}
	id, ok := seededIDs[name]
	if !ok {
		return 0, domain.ErrInvalidRole
	}
	return id, nil
}

func (r *stubRoleRepo) List(context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(domain.SeedRoles))
	for _, name := range domain.SeedRoles {
		out = append(out, domain.Role{ID: seededIDs[name], Name: name})
	}
	return out, nil
}

type stubHasher struct {
	log *callLog
	err error
	n   int
}

func (h *stubHasher) Hash(_ context.Context, secret string) (string, error) {
	h.log.add("hash")
	if h.err != nil {
		return "", h.err
	}
	h.n++
	return fmt.Sprintf("hashed:%d:%s", h.n, secret), nil
}

func (h *stubHasher) Verify(secret, hash string) bool {
	return strings.HasSuffix(hash, ":"+secret)
}

type stubAccountRepo struct {
	log       *callLog
	nextID    int64
	rows      map[int64]*domain.Account
	createErr error
	updateErr error

	lastChanges *domain.AccountChanges
}

func newStubAccountRepo(log *callLog) *stubAccountRepo {
	return &stubAccountRepo{log: log, rows: make(map[int64]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (int64, error) {
	r.log.add("insert")
	if r.createErr != nil {
		return 0, r.createErr
	}
	for _, existing := range r.rows {
		if existing.Email == a.Email {
			return 0, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	clone := *a
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubAccountRepo) view(a *domain.Account) domain.AccountView {
	return domain.AccountView{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		Role:      roleName(a.RoleID),
	}
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.AccountView, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	v := r.view(a)
	return &v, nil
}

func (r *stubAccountRepo) List(context.Context) ([]domain.AccountView, error) {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.AccountView, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.view(r.rows[id]))
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, id int64, c domain.AccountChanges) (int64, error) {
	r.log.add("update")
	r.lastChanges = &c
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	a, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if c.RoleID != nil {
		a.RoleID = *c.RoleID
	}
	if c.PasswordHash != nil {
		a.PasswordHash = *c.PasswordHash
	}
	if c.FullName != nil {
		a.FullName = *c.FullName
	}
	if c.Email != nil {
		a.Email = *c.Email
	}
	if c.Phone != nil {
		a.Phone = c.Phone
	}
	return 1, nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

type stubAudit struct {
	events []domain.AccountEvent
}

func (a *stubAudit) Record(e domain.AccountEvent) { a.events = append(a.events, e) }

// stubIdempotency keeps claims in memory. An entry with id 0 is pending.
type stubIdempotency struct {
	entries  map[string]idemEntry
	claimErr error
	released []string
}

type idemEntry struct {
	fingerprint string
	id          int64
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{entries: make(map[string]idemEntry)}
}

func (s *stubIdempotency) Claim(_ context.Context, key, fingerprint string) (ports.IdempotencyClaim, error) {
	if s.claimErr != nil {
		return ports.IdempotencyClaim{}, s.claimErr
	}
	e, ok := s.entries[key]
	switch {
	case !ok:
		s.entries[key] = idemEntry{fingerprint: fingerprint}
		return ports.IdempotencyClaim{Owned: true}, nil
	case e.fingerprint != fingerprint:
		return ports.IdempotencyClaim{}, domain.ErrIdempotencyKeyReused
	case e.id == 0:
		return ports.IdempotencyClaim{}, domain.ErrIdempotencyInProgress
	default:
		return ports.IdempotencyClaim{ID: e.id}, nil
	}
}

func (s *stubIdempotency) Complete(_ context.Context, key, fingerprint string, id int64) error {
	s.entries[key] = idemEntry{fingerprint: fingerprint, id: id}
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key, fingerprint string) error {
	s.released = append(s.released, key)
	if e, ok := s.entries[key]; ok && e.id == 0 && e.fingerprint == fingerprint {
		delete(s.entries, key)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

type accountFixture struct {
	log    *callLog
	roles  *stubRoleRepo
	hasher *stubHasher
	repo   *stubAccountRepo
	audit  *stubAudit
	svc    *AccountService
}

func newAccountFixture(opts ...AccountOption) *accountFixture {
	log := &callLog{}
	f := &accountFixture{
		log:    log,
		roles:  &stubRoleRepo{log: log},
		hasher: &stubHasher{log: log},
		repo:   newStubAccountRepo(log),
		audit:  &stubAudit{},
	}
	opts = append([]AccountOption{WithAuditRecorder(f.audit)}, opts...)
	f.svc = NewAccountService(f.roles, f.repo, f.hasher, zerolog.Nop(), opts...)
	return f
}

func validInput(email string) ports.CreateAccountInput {
	return ports.CreateAccountInput{
		FullName: "Kasun Perera",
		Email:    email,
		Role:     domain.RolePlayer,
		Password: "s3cret",
	}
}

// ---------------------------------------------------------------------------
// CreateAccount
// ---------------------------------------------------------------------------

func TestAccountService_Create_Success(t *testing.T) {
	f := newAccountFixture()

	id, err := f.svc.CreateAccount(context.Background(), validInput("kasun@example.com"))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	stored := f.repo.rows[id]
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if stored.RoleID != seededIDs[domain.RolePlayer] {
		t.Fatalf("unexpected role id: %d", stored.RoleID)
	}
	if stored.Phone != nil {
		t.Fatalf("expected no phone, got %q", *stored.Phone)
	}
	if len(f.audit.events) != 1 || f.audit.events[0].Action != domain.ActionAccountCreated {
		t.Fatalf("expected one account_created audit event, got %+v", f.audit.events)
	}
}

func TestAccountService_Create_StepOrder(t *testing.T) {
	f := newAccountFixture()

	if _, err := f.svc.CreateAccount(context.Background(), validInput("order@example.com")); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	want := []string{"resolve", "hash", "insert"}
	if strings.Join(f.log.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected call order %v, got %v", want, f.log.calls)
	}
}

func TestAccountService_Create_MissingFields(t *testing.T) {
	cases := map[string]func(*ports.CreateAccountInput){
		"full_name": func(in *ports.CreateAccountInput) { in.FullName = "" },
		"email":     func(in *ports.CreateAccountInput) { in.Email = "" },
		"role":      func(in *ports.CreateAccountInput) { in.Role = "" },
		"password":  func(in *ports.CreateAccountInput) { in.Password = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newAccountFixture()
			in := validInput("missing@example.com")
			mutate(&in)

			_, err := f.svc.CreateAccount(context.Background(), in)
			if !errors.Is(err, domain.ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
			if len(f.log.calls) != 0 {
				t.Fatalf("expected no collaborator calls, got %v", f.log.calls)
			}
		})
	}
}

func TestAccountService_Create_InvalidRoleStopsBeforeHashing(t *testing.T) {
	f := newAccountFixture()
	in := validInput("coach@example.com")
	in.Role = "player" // case-sensitive: not a seeded role

	_, err := f.svc.CreateAccount(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if strings.Join(f.log.calls, ",") != "resolve" {
		t.Fatalf("expected only role resolution, got %v", f.log.calls)
	}
	if len(f.repo.rows) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestAccountService_Create_HashFailureStopsBeforeInsert(t *testing.T) {
	f := newAccountFixture()
	f.hasher.err = fmt.Errorf("%w: out of memory", domain.ErrHashFailure)

	_, err := f.svc.CreateAccount(context.Background(), validInput("hash@example.com"))
	if !errors.Is(err, domain.ErrHashFailure) {
		t.Fatalf("expected ErrHashFailure, got %v", err)
	}
	if strings.Join(f.log.calls, ",") != "resolve,hash" {
		t.Fatalf("expected resolve,hash, got %v", f.log.calls)
	}
}

func TestAccountService_Create_DuplicateEmail(t *testing.T) {
	f := newAccountFixture()

	first := validInput("dup@example.com")
	second := validInput("dup@example.com")
	second.FullName = "Someone Else"
	second.Role = domain.RoleAgent
	second.Password = "different"

	var successes, duplicates int
	for _, in := range []ports.CreateAccountInput{first, second} {
		_, err := f.svc.CreateAccount(context.Background(), in)
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrDuplicateEmail):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 || duplicates != 1 {
		t.Fatalf("expected 1 success and 1 duplicate, got %d and %d", successes, duplicates)
	}
}

func TestAccountService_Create_StoreFailurePreservesMessage(t *testing.T) {
	f := newAccountFixture()
	f.repo.createErr = domain.NewStoreError("insert user", errors.New("disk I/O error"))

	_, err := f.svc.CreateAccount(context.Background(), validInput("io@example.com"))
	if !errors.Is(err, domain.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) || storeErr.Error() != "disk I/O error" {
		t.Fatalf("expected original diagnostic, got %v", err)
	}
	if len(f.audit.events) != 0 {
		t.Fatalf("expected no audit event on failure")
	}
}

func TestAccountService_Create_SaltedHashes(t *testing.T) {
	log := &callLog{}
	repo := newStubAccountRepo(log)
	bc := hasher.New(hasher.Config{Cost: bcrypt.MinCost})
	svc := NewAccountService(&stubRoleRepo{log: log}, repo, bc, zerolog.Nop())

	a, err := svc.CreateAccount(context.Background(), validInput("one@example.com"))
	if err != nil {
		t.Fatalf("create one: %v", err)
	}
	b, err := svc.CreateAccount(context.Background(), validInput("two@example.com"))
	if err != nil {
		t.Fatalf("create two: %v", err)
	}

	hashA, hashB := repo.rows[a].PasswordHash, repo.rows[b].PasswordHash
	if hashA == "s3cret" || hashB == "s3cret" {
		t.Fatalf("stored hash equals plaintext")
	}
	if hashA == hashB {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if !bc.Verify("s3cret", hashA) || !bc.Verify("s3cret", hashB) {
		t.Fatalf("stored hashes do not verify against the password")
	}
}

func TestAccountService_Create_IdempotentReplay(t *testing.T) {
	idem := newStubIdempotency()
	f := newAccountFixture(WithIdempotencyStore(idem))

	in := validInput("replay@example.com")
	in.IdempotencyKey = "key-1"

	first, err := f.svc.CreateAccount(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	f.log.calls = nil

	second, err := f.svc.CreateAccount(context.Background(), in)
	if err != nil {
		t.Fatalf("replayed create should succeed, got %v", err)
	}
	if first != second {
		t.Fatalf("expected replay to return id %d, got %d", first, second)
	}
	if len(f.repo.rows) != 1 {
		t.Fatalf("expected a single stored account, got %d", len(f.repo.rows))
	}
	if len(f.log.calls) != 0 {
		t.Fatalf("replay must not touch roles, hasher or store, got %v", f.log.calls)
	}
}

func TestAccountService_Create_KeyClaimedBeforeAnyWork(t *testing.T) {
	idem := newStubIdempotency()
	f := newAccountFixture(WithIdempotencyStore(idem))

	in := validInput("inflight@example.com")
	in.IdempotencyKey = "key-3"

	// Another request with the same key and body holds the claim.
	if _, err := idem.Claim(context.Background(), in.IdempotencyKey, requestFingerprint(in)); err != nil {
		t.Fatalf("claim: %v", err)
	}

	_, err := f.svc.CreateAccount(context.Background(), in)
	if !errors.Is(err, domain.ErrIdempotencyInProgress) {
		t.Fatalf("expected ErrIdempotencyInProgress, got %v", err)
	}
	if len(f.log.calls) != 0 || len(f.repo.rows) != 0 {
		t.Fatalf("expected no work while the key is held, got %v", f.log.calls)
	}
	if len(idem.released) != 0 {
		t.Fatalf("a key held by another request must not be released")
	}
}

func TestAccountService_Create_KeyReusedForDifferentBody(t *testing.T) {
	idem := newStubIdempotency()
	f := newAccountFixture(WithIdempotencyStore(idem))

	first := validInput("first@example.com")
	first.IdempotencyKey = "key-4"
	if _, err := f.svc.CreateAccount(context.Background(), first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := validInput("second@example.com")
	second.IdempotencyKey = "key-4"
	_, err := f.svc.CreateAccount(context.Background(), second)
	if !errors.Is(err, domain.ErrIdempotencyKeyReused) {
		t.Fatalf("expected ErrIdempotencyKeyReused, got %v", err)
	}
	if len(f.repo.rows) != 1 {
		t.Fatalf("expected only the first account, got %d", len(f.repo.rows))
	}
}

func TestAccountService_Create_FailureReleasesKey(t *testing.T) {
	idem := newStubIdempotency()
	f := newAccountFixture(WithIdempotencyStore(idem))
	f.hasher.err = fmt.Errorf("%w: out of memory", domain.ErrHashFailure)

	in := validInput("retry@example.com")
	in.IdempotencyKey = "key-5"

	if _, err := f.svc.CreateAccount(context.Background(), in); !errors.Is(err, domain.ErrHashFailure) {
		t.Fatalf("expected ErrHashFailure, got %v", err)
	}
	if len(idem.released) != 1 || len(idem.entries) != 0 {
		t.Fatalf("expected the key to be released, entries=%v", idem.entries)
	}

	f.hasher.err = nil
	id, err := f.svc.CreateAccount(context.Background(), in)
	if err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
	if idem.entries[in.IdempotencyKey].id != id {
		t.Fatalf("expected key to record id %d, got %+v", id, idem.entries[in.IdempotencyKey])
	}
}

func TestAccountService_Create_IdempotencyStoreDownCreatesAnyway(t *testing.T) {
	idem := newStubIdempotency()
	idem.claimErr = errors.New("redis timeout")
	f := newAccountFixture(WithIdempotencyStore(idem))

	in := validInput("flaky@example.com")
	in.IdempotencyKey = "key-2"

	if _, err := f.svc.CreateAccount(context.Background(), in); err != nil {
		t.Fatalf("expected create to proceed, got %v", err)
	}
	if len(f.repo.rows) != 1 {
		t.Fatalf("expected account to be stored")
	}
}

func TestRequestFingerprint(t *testing.T) {
	base := validInput("fp@example.com")

	samePassword := base
	samePassword.Password = "another"
	if requestFingerprint(base) != requestFingerprint(samePassword) {
		t.Fatalf("password must not affect the fingerprint")
	}

	withPhone := base
	withPhone.Phone = strPtr("0771234567")
	otherRole := base
	otherRole.Role = domain.RoleAgent
	for _, other := range []ports.CreateAccountInput{withPhone, otherRole} {
		if requestFingerprint(base) == requestFingerprint(other) {
			t.Fatalf("expected different fingerprints for %+v", other)
		}
	}
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestAccountService_RoundTrip(t *testing.T) {
	f := newAccountFixture()

	id, err := f.svc.CreateAccount(context.Background(), ports.CreateAccountInput{
		FullName: "A",
		Email:    "a@x.com",
		Role:     domain.RolePlayer,
		Password: "p",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := f.svc.GetAccount(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Role != "Player" || view.FullName != "A" || view.Email != "a@x.com" {
		t.Fatalf("unexpected projection: %+v", view)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key := range fields {
		if strings.Contains(key, "password") {
			t.Fatalf("projection leaks %q", key)
		}
	}
}

func TestAccountService_Get_NotFound(t *testing.T) {
	f := newAccountFixture()

	if _, err := f.svc.GetAccount(context.Background(), 42); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_List_AfterCreatesAndDeletes(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := f.svc.CreateAccount(ctx, validInput(fmt.Sprintf("u%d@example.com", i))); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	for _, id := range []int64{2, 4} {
		deleted, err := f.svc.DeleteAccount(ctx, id, "")
		if err != nil || deleted != 1 {
			t.Fatalf("delete %d: deleted=%d err=%v", id, deleted, err)
		}
	}

	views, err := f.svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != n-2 {
		t.Fatalf("expected %d accounts, got %d", n-2, len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i-1].ID >= views[i].ID {
			t.Fatalf("accounts not in ascending id order: %+v", views)
		}
	}
}

// ---------------------------------------------------------------------------
// UpdateAccount
// ---------------------------------------------------------------------------

func TestAccountService_Update_NoUpdatableFields(t *testing.T) {
	f := newAccountFixture()

	cases := map[string]ports.UpdateAccountInput{
		"nil fields":   {},
		"empty values": {FullName: strPtr(""), Email: strPtr(""), Phone: strPtr(""), Password: strPtr(""), Role: strPtr("")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.UpdateAccount(context.Background(), 1, in)
			if !errors.Is(err, domain.ErrNoUpdatableFields) {
				t.Fatalf("expected ErrNoUpdatableFields, got %v", err)
			}
		})
	}
	if f.repo.lastChanges != nil {
		t.Fatalf("expected no store update")
	}
}

func TestAccountService_Update_PhoneOnly(t *testing.T) {
	f := newAccountFixture()
	id, err := f.svc.CreateAccount(context.Background(), validInput("phone@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := *f.repo.rows[id]

	changed, err := f.svc.UpdateAccount(context.Background(), id, ports.UpdateAccountInput{Phone: strPtr("+94 77 123 4567")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 change, got %d", changed)
	}

	after := f.repo.rows[id]
	if after.Phone == nil || *after.Phone != "+94 77 123 4567" {
		t.Fatalf("phone not updated: %v", after.Phone)
	}
	if after.PasswordHash != before.PasswordHash || after.Email != before.Email || after.RoleID != before.RoleID || after.FullName != before.FullName {
		t.Fatalf("unexpected changes besides phone: before=%+v after=%+v", before, *after)
	}

	c := f.repo.lastChanges
	if c.RoleID != nil || c.PasswordHash != nil || c.Email != nil || c.FullName != nil {
		t.Fatalf("expected only phone in change set, got %v", c.Fields())
	}
}

func TestAccountService_Update_RoleAndPasswordTranslated(t *testing.T) {
	f := newAccountFixture()
	id, _ := f.svc.CreateAccount(context.Background(), validInput("agent@example.com"))
	f.log.calls = nil

	_, err := f.svc.UpdateAccount(context.Background(), id, ports.UpdateAccountInput{
		Role:     strPtr(domain.RoleAgent),
		Password: strPtr("n3w"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if strings.Join(f.log.calls, ",") != "resolve,hash,update" {
		t.Fatalf("unexpected call order %v", f.log.calls)
	}
	c := f.repo.lastChanges
	if c.RoleID == nil || *c.RoleID != seededIDs[domain.RoleAgent] {
		t.Fatalf("role not translated to id: %+v", c.RoleID)
	}
	if c.PasswordHash == nil || *c.PasswordHash == "n3w" {
		t.Fatalf("password not hashed before storing")
	}
}

func TestAccountService_Update_InvalidRole(t *testing.T) {
	f := newAccountFixture()

	_, err := f.svc.UpdateAccount(context.Background(), 1, ports.UpdateAccountInput{
		Role:     strPtr("Coach"),
		FullName: strPtr("New Name"),
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if f.repo.lastChanges != nil {
		t.Fatalf("expected no store update")
	}
}

func TestAccountService_Update_UnknownIDIsZeroChanges(t *testing.T) {
	f := newAccountFixture()

	changed, err := f.svc.UpdateAccount(context.Background(), 999, ports.UpdateAccountInput{FullName: strPtr("Ghost")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected 0 changes, got %d", changed)
	}
	if len(f.audit.events) != 0 {
		t.Fatalf("expected no audit event for zero changes")
	}
}

// ---------------------------------------------------------------------------
// DeleteAccount
// ---------------------------------------------------------------------------

func TestAccountService_Delete(t *testing.T) {
	f := newAccountFixture()
	id, _ := f.svc.CreateAccount(context.Background(), validInput("bye@example.com"))

	deleted, err := f.svc.DeleteAccount(context.Background(), id, "req-1")
	if err != nil || deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d (%v)", deleted, err)
	}

	deleted, err = f.svc.DeleteAccount(context.Background(), id, "req-2")
	if err != nil || deleted != 0 {
		t.Fatalf("expected 0 deleted on second call, got %d (%v)", deleted, err)
	}

	last := f.audit.events[len(f.audit.events)-1]
	if last.Action != domain.ActionAccountDeleted || last.RequestID != "req-1" {
		t.Fatalf("unexpected audit event: %+v", last)
	}
}
