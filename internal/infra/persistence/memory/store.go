// Package memory contains an in-process implementation of the persistence layer,
// used for local development and tests when no PostgreSQL instance is available.
package memory

import (
	"context"
	"sync"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

type grantKey struct {
	userID uuid.UUID
	role   entity.Role
}

// dataset is the full state of the store. Entities are stored by value and copied on the way
// in and out so callers never share memory with the store.
type dataset struct {
	profiles map[uuid.UUID]entity.Profile
	grants   map[grantKey]entity.RoleGrant
	listings map[uuid.UUID]entity.Listing
	rooms    map[uuid.UUID]entity.DealRoom
	messages map[uuid.UUID][]entity.DealMessage
	offers   map[uuid.UUID][]entity.Offer
}

func newDataset() *dataset {
	return &dataset{
		profiles: make(map[uuid.UUID]entity.Profile),
		grants:   make(map[grantKey]entity.RoleGrant),
		listings: make(map[uuid.UUID]entity.Listing),
		rooms:    make(map[uuid.UUID]entity.DealRoom),
		messages: make(map[uuid.UUID][]entity.DealMessage),
		offers:   make(map[uuid.UUID][]entity.Offer),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.profiles {
		c.profiles[k] = cloneProfile(v)
	}
	for k, v := range d.grants {
		c.grants[k] = v
	}
	for k, v := range d.listings {
		c.listings[k] = v
	}
	for k, v := range d.rooms {
		c.rooms[k] = cloneRoom(v)
	}
	for k, v := range d.messages {
		c.messages[k] = append([]entity.DealMessage(nil), v...)
	}
	for k, v := range d.offers {
		c.offers[k] = append([]entity.Offer(nil), v...)
	}

	return c
}

// view gives repositories read and write access to a dataset.
type view interface {
	read(fn func(d *dataset))
	write(fn func(d *dataset) error) error
}

// Store owns the committed dataset. Writers are serialised; transactions work on a snapshot
// that replaces the committed state only when the transaction function succeeds.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) read(fn func(d *dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.data)
}

func (s *Store) write(fn func(d *dataset) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

// txView is owned by a single transaction and needs no locking.
type txView struct {
	data *dataset
}

func (v *txView) read(fn func(d *dataset)) {
	fn(v.data)
}

func (v *txView) write(fn func(d *dataset) error) error {
	return fn(v.data)
}

// Repositories bound directly to the committed state.

func (s *Store) ProfileRepo() repository.ProfileRepository     { return &profileRepository{v: s} }
func (s *Store) RoleGrantRepo() repository.RoleGrantRepository { return &roleGrantRepository{v: s} }
func (s *Store) ListingRepo() repository.ListingRepository     { return &listingRepository{v: s} }
func (s *Store) DealRepo() repository.DealRepository           { return &dealRepository{v: s} }

type txFactory struct {
	v *txView
}

func (f *txFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{v: f.v}
}

func (f *txFactory) RoleGrantRepo() repository.RoleGrantRepository {
	return &roleGrantRepository{v: f.v}
}

func (f *txFactory) ListingRepo() repository.ListingRepository {
	return &listingRepository{v: f.v}
}

func (f *txFactory) DealRepo() repository.DealRepository {
	return &dealRepository{v: f.v}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn against a snapshot and commits the snapshot if fn returns nil.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(&txFactory{v: &txView{data: snapshot}}); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()

	return nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func cloneProfile(p entity.Profile) entity.Profile {
	if p.Role != nil {
		role := *p.Role
		p.Role = &role
	}
	if p.PreferredTrack != nil {
		track := *p.PreferredTrack
		p.PreferredTrack = &track
	}
	if p.DisplayName != nil {
		name := *p.DisplayName
		p.DisplayName = &name
	}
	if p.CompanyName != nil {
		name := *p.CompanyName
		p.CompanyName = &name
	}
	p.Roles = append(entity.Roles(nil), p.Roles...)

	return p
}

func cloneRoom(r entity.DealRoom) entity.DealRoom {
	if r.NDASignedAt != nil {
		t := *r.NDASignedAt
		r.NDASignedAt = &t
	}
	if r.LOISubmittedAt != nil {
		t := *r.LOISubmittedAt
		r.LOISubmittedAt = &t
	}

	return r
}
