package services_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memState is the whole store content; it is copied on Begin and restored on Rollback.
type memState struct {
	accounts    map[string]domain.Account
	payments    []domain.Payment
	plots       map[string]domain.Plot // keyed by number, owner fields unset
	assignments map[string]string      // plot number -> account id
	admins      map[string]domain.Admin
}

func (s memState) clone() memState {
	return memState{
		accounts:    maps.Clone(s.accounts),
		payments:    slices.Clone(s.payments),
		plots:       maps.Clone(s.plots),
		assignments: maps.Clone(s.assignments),
		admins:      maps.Clone(s.admins),
	}
}

// memStore is an in-memory transactional store implementing every repository port.
// It allows one open transaction at a time; the pgx.Tx handed out is nil.
type memStore struct {
	state    memState
	snapshot *memState

	begins, commits, rollbacks int
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		accounts:    map[string]domain.Account{},
		plots:       map[string]domain.Plot{},
		assignments: map[string]string{},
		admins:      map[string]domain.Admin{},
	}}
}

var (
	_ portsrepo.AccountRepositoryWithTx = (*memStore)(nil)
	_ portsrepo.PaymentRepositoryWithTx = (*memStore)(nil)
	_ portsrepo.PlotRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.AdminRepository         = (*memStore)(nil)
)

func (m *memStore) repos() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{AccountRepo: m, PaymentRepo: m, PlotRepo: m, AdminRepo: m}
}

func (m *memStore) addPlots(numbers ...string) {
	for _, n := range numbers {
		m.state.plots[n] = domain.Plot{PlotID: "plot-" + n, Number: n, Status: domain.PlotAvailable}
	}
}

// --- TransactionManager ---

func (m *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.snapshot != nil {
		return nil, errors.New("memstore: transaction already open")
	}
	snap := m.state.clone()
	m.snapshot = &snap
	m.begins++
	return nil, nil
}

func (m *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	m.snapshot = nil
	m.commits++
	return nil
}

func (m *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	if m.snapshot != nil {
		m.state = *m.snapshot
		m.snapshot = nil
	}
	m.rollbacks++
	return nil
}

// --- Accounts ---

func (m *memStore) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, ok := m.state.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

func (m *memStore) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	return m.FindAccountByID(ctx, accountID)
}

func (m *memStore) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	all := make([]domain.Account, 0, len(m.state.accounts))
	for _, acc := range m.state.accounts {
		all = append(all, acc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return []domain.Account{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (m *memStore) contactTaken(contact, exceptID string) bool {
	for id, acc := range m.state.accounts {
		if id != exceptID && acc.Contact == contact {
			return true
		}
	}
	return false
}

func (m *memStore) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	if m.contactTaken(account.Contact, "") {
		return fmt.Errorf("%w: contact %s", apperrors.ErrDuplicate, account.Contact)
	}
	m.state.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	if _, ok := m.state.accounts[account.AccountID]; !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	if m.contactTaken(account.Contact, account.AccountID) {
		return fmt.Errorf("%w: contact %s", apperrors.ErrDuplicate, account.Contact)
	}
	m.state.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, status domain.AccountStatus, userID string, now time.Time) error {
	acc, ok := m.state.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	acc.TotalBalance = balance
	acc.Status = status
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	m.state.accounts[accountID] = acc
	return nil
}

func (m *memStore) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error {
	if _, ok := m.state.accounts[accountID]; !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	for _, p := range m.state.payments {
		if p.AccountID == accountID {
			return errors.New("memstore: payments_account_id_fkey violated")
		}
	}
	delete(m.state.accounts, accountID)
	maps.DeleteFunc(m.state.assignments, func(_, owner string) bool { return owner == accountID })
	return nil
}

// --- Payments ---

func (m *memStore) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	if _, ok := m.state.accounts[payment.AccountID]; !ok {
		return fmt.Errorf("%w: payments_account_id_fkey", apperrors.ErrNotFound)
	}
	m.state.payments = append(m.state.payments, payment)
	return nil
}

func (m *memStore) ListPaymentsByAccountID(ctx context.Context, accountID string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range m.state.payments {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) ListPaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.Payment, error) {
	return m.ListPaymentsByAccountID(ctx, accountID)
}

func (m *memStore) DeletePaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	before := len(m.state.payments)
	m.state.payments = slices.DeleteFunc(m.state.payments, func(p domain.Payment) bool { return p.AccountID == accountID })
	return int64(before - len(m.state.payments)), nil
}

// --- Plots ---

func (m *memStore) withOwner(p domain.Plot) domain.Plot {
	if owner, ok := m.state.assignments[p.Number]; ok {
		id := owner
		p.OwnerAccountID = &id
		if acc, ok := m.state.accounts[owner]; ok {
			name := acc.Name
			p.OwnerName = &name
		}
	}
	return p
}

func (m *memStore) SavePlot(ctx context.Context, plot domain.Plot) error {
	if _, ok := m.state.plots[plot.Number]; ok {
		return fmt.Errorf("%w: plot %s", apperrors.ErrDuplicate, plot.Number)
	}
	m.state.plots[plot.Number] = plot
	return nil
}

func (m *memStore) FindPlotByNumber(ctx context.Context, number string) (*domain.Plot, error) {
	p, ok := m.state.plots[number]
	if !ok {
		return nil, fmt.Errorf("%w: plot %s", apperrors.ErrNotFound, number)
	}
	p = m.withOwner(p)
	return &p, nil
}

func (m *memStore) ListPlots(ctx context.Context, status *domain.PlotStatus, limit int, offset int) ([]domain.Plot, error) {
	numbers := make([]string, 0, len(m.state.plots))
	for n := range m.state.plots {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	out := []domain.Plot{}
	for _, n := range numbers {
		p := m.state.plots[n]
		if status != nil && p.Status != *status {
			continue
		}
		out = append(out, m.withOwner(p))
	}
	if offset >= len(out) {
		return []domain.Plot{}, nil
	}
	return out[offset:min(offset+limit, len(out))], nil
}

func (m *memStore) DeletePlot(ctx context.Context, number string) error {
	p, ok := m.state.plots[number]
	if !ok {
		return fmt.Errorf("%w: plot %s", apperrors.ErrNotFound, number)
	}
	if p.Status != domain.PlotAvailable {
		return fmt.Errorf("%w: plot %s is sold", apperrors.ErrValidation, number)
	}
	delete(m.state.plots, number)
	return nil
}

func (m *memStore) ReleasePlotsByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]string, error) {
	var released []string
	for number, owner := range m.state.assignments {
		if owner != accountID {
			continue
		}
		p := m.state.plots[number]
		p.Status = domain.PlotAvailable
		p.ReservedAt = nil
		m.state.plots[number] = p
		delete(m.state.assignments, number)
		released = append(released, number)
	}
	sort.Strings(released)
	return released, nil
}

func (m *memStore) AssignPlotInTx(ctx context.Context, tx pgx.Tx, number string, accountID string, now time.Time) (bool, error) {
	p, ok := m.state.plots[number]
	if !ok {
		return false, nil
	}
	if _, ok := m.state.accounts[accountID]; !ok {
		return false, fmt.Errorf("%w: plot_assignments_account_id_fkey", apperrors.ErrNotFound)
	}
	p.Status = domain.PlotSold
	p.ReservedAt = &now
	m.state.plots[number] = p
	m.state.assignments[number] = accountID
	return true, nil
}

// --- Admins ---

func (m *memStore) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a, ok := m.state.admins[email]
	if !ok {
		return nil, fmt.Errorf("%w: admin %s", apperrors.ErrNotFound, email)
	}
	return &a, nil
}

func (m *memStore) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	if _, ok := m.state.admins[admin.Email]; ok {
		return fmt.Errorf("%w: admin %s", apperrors.ErrDuplicate, admin.Email)
	}
	m.state.admins[admin.Email] = admin
	return nil
}
