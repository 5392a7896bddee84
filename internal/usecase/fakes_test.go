//go:build unit

package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for Postgres. Within serializes
// transactions with a mutex and restores a snapshot on error, which gives
// the same atomicity and isolation the usecases rely on.
type fakeStore struct {
	mu           sync.Mutex
	hotels       map[uuid.UUID]*readmodel.HotelRM
	rooms        map[uuid.UUID]*readmodel.RoomRM
	reservations map[uuid.UUID]*readmodel.ReservationRM
	users        map[uuid.UUID]*readmodel.UserRM
	passwords    map[uuid.UUID]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:       make(map[uuid.UUID]*readmodel.HotelRM),
		rooms:        make(map[uuid.UUID]*readmodel.RoomRM),
		reservations: make(map[uuid.UUID]*readmodel.ReservationRM),
		users:        make(map[uuid.UUID]*readmodel.UserRM),
		passwords:    make(map[uuid.UUID]string),
	}
}

func (s *fakeStore) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	err := fn(context.Background(), &fakeTx{store: s})
	if err != nil {
		s.restore(snapshot)
	}
	return err
}

type storeSnapshot struct {
	hotels       map[uuid.UUID]*readmodel.HotelRM
	rooms        map[uuid.UUID]*readmodel.RoomRM
	reservations map[uuid.UUID]*readmodel.ReservationRM
	users        map[uuid.UUID]*readmodel.UserRM
	passwords    map[uuid.UUID]string
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		hotels:       make(map[uuid.UUID]*readmodel.HotelRM, len(s.hotels)),
		rooms:        make(map[uuid.UUID]*readmodel.RoomRM, len(s.rooms)),
		reservations: make(map[uuid.UUID]*readmodel.ReservationRM, len(s.reservations)),
		users:        make(map[uuid.UUID]*readmodel.UserRM, len(s.users)),
		passwords:    make(map[uuid.UUID]string, len(s.passwords)),
	}
	for k, v := range s.hotels {
		c := *v
		snap.hotels[k] = &c
	}
	for k, v := range s.rooms {
		c := *v
		snap.rooms[k] = &c
	}
	for k, v := range s.reservations {
		c := *v
		snap.reservations[k] = &c
	}
	for k, v := range s.users {
		c := *v
		snap.users[k] = &c
	}
	for k, v := range s.passwords {
		snap.passwords[k] = v
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.hotels = snap.hotels
	s.rooms = snap.rooms
	s.reservations = snap.reservations
	s.users = snap.users
	s.passwords = snap.passwords
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Hotels() shared.HotelRepository             { return &fakeHotelRepo{store: t.store} }
func (t *fakeTx) Rooms() shared.RoomRepository               { return &fakeRoomRepo{store: t.store} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository               { return &fakeUserRepo{store: t.store} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeHotelRepo struct {
	store *fakeStore
}

func (r *fakeHotelRepo) Create(_ context.Context, h *hotel.Hotel) (*readmodel.HotelRM, error) {
	for _, existing := range r.store.hotels {
		if existing.Name == h.Name() {
			return nil, infra.WrapRepoErr("hotel name taken", nil, infra.KindDuplicateKey)
		}
	}
	now := time.Now().UTC()
	rm := &readmodel.HotelRM{
		ID:        h.ID(),
		Name:      h.Name(),
		Address:   h.Address(),
		City:      h.City(),
		State:     h.State(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.hotels[rm.ID] = rm
	return rm, nil
}

func (r *fakeHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	rm, ok := r.store.hotels[id]
	if !ok {
		return nil, notFound("hotel not found")
	}
	c := *rm
	return &c, nil
}

func (r *fakeHotelRepo) Update(_ context.Context, rm *readmodel.HotelRM) error {
	if _, ok := r.store.hotels[rm.ID]; !ok {
		return notFound("hotel not found")
	}
	for id, existing := range r.store.hotels {
		if id != rm.ID && existing.Name == rm.Name {
			return infra.WrapRepoErr("hotel name taken", nil, infra.KindDuplicateKey)
		}
	}
	c := *rm
	c.UpdatedAt = time.Now().UTC()
	r.store.hotels[rm.ID] = &c
	return nil
}

func (r *fakeHotelRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.hotels[id]; !ok {
		return notFound("hotel not found")
	}
	for _, room := range r.store.rooms {
		if room.HotelID == id {
			return infra.WrapRepoErr("hotel has rooms", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.store.hotels, id)
	return nil
}

type fakeRoomRepo struct {
	store *fakeStore
}

func (r *fakeRoomRepo) Create(_ context.Context, rm *room.Room) (*readmodel.RoomRM, error) {
	if _, ok := r.store.hotels[rm.HotelID()]; !ok {
		return nil, infra.WrapRepoErr("hotel missing", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range r.store.rooms {
		if existing.HotelID == rm.HotelID() && existing.Number == rm.Number() {
			return nil, infra.WrapRepoErr("room number taken", nil, infra.KindDuplicateKey)
		}
	}
	now := time.Now().UTC()
	out := &readmodel.RoomRM{
		ID:        rm.ID(),
		HotelID:   rm.HotelID(),
		Number:    rm.Number(),
		Type:      rm.Type(),
		Capacity:  rm.Capacity(),
		Price:     rm.Price(),
		Amenities: rm.Amenities(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.rooms[out.ID] = out
	return out, nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	rm, ok := r.store.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	c := *rm
	return &c, nil
}

func (r *fakeRoomRepo) LockByID(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.rooms[id]; !ok {
		return notFound("room not found")
	}
	return nil
}

func (r *fakeRoomRepo) Update(_ context.Context, rm *readmodel.RoomRM) error {
	if _, ok := r.store.rooms[rm.ID]; !ok {
		return notFound("room not found")
	}
	for id, existing := range r.store.rooms {
		if id != rm.ID && existing.HotelID == rm.HotelID && existing.Number == rm.Number {
			return infra.WrapRepoErr("room number taken", nil, infra.KindDuplicateKey)
		}
	}
	c := *rm
	c.UpdatedAt = time.Now().UTC()
	r.store.rooms[rm.ID] = &c
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.rooms[id]; !ok {
		return notFound("room not found")
	}
	for _, res := range r.store.reservations {
		if res.RoomID == id {
			return infra.WrapRepoErr("room has reservations", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.store.rooms, id)
	return nil
}

type fakeReservationRepo struct {
	store *fakeStore
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	now := time.Now().UTC()
	rm := &readmodel.ReservationRM{
		ID:           res.ID(),
		RoomID:       res.RoomID(),
		UserID:       res.UserID(),
		CheckInDate:  res.Stay().CheckIn(),
		CheckOutDate: res.Stay().CheckOut(),
		TotalAmount:  res.Amount().Value(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.store.reservations[rm.ID] = rm
	return rm, nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, ok := r.store.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	c := *rm
	return &c, nil
}

func (r *fakeReservationRepo) CountOverlapping(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int64, error) {
	var count int64
	for id, res := range r.store.reservations {
		if res.RoomID != roomID {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		if res.CheckInDate.Before(checkOut) && checkIn.Before(res.CheckOutDate) {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, rm *readmodel.ReservationRM) error {
	if _, ok := r.store.reservations[rm.ID]; !ok {
		return notFound("reservation not found")
	}
	c := *rm
	c.UpdatedAt = time.Now().UTC()
	r.store.reservations[rm.ID] = &c
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.reservations[id]; !ok {
		return notFound("reservation not found")
	}
	delete(r.store.reservations, id)
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (*readmodel.UserRM, error) {
	for _, existing := range r.store.users {
		if existing.Username == u.Username().String() {
			return nil, infra.WrapRepoErr("username taken", nil, infra.KindDuplicateKey)
		}
	}
	now := time.Now().UTC()
	rm := &readmodel.UserRM{
		ID:        u.ID(),
		Username:  u.Username().String(),
		Role:      u.Role().String(),
		FullName:  u.FullName(),
		Tags:      u.Tags(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.users[rm.ID] = rm
	r.store.passwords[rm.ID] = u.PasswordHash()
	return rm, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, ok := r.store.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	c := *rm
	return &c, nil
}

func (r *fakeUserRepo) Update(_ context.Context, rm *readmodel.UserRM, passwordHash *string) error {
	if _, ok := r.store.users[rm.ID]; !ok {
		return notFound("user not found")
	}
	for id, existing := range r.store.users {
		if id != rm.ID && existing.Username == rm.Username {
			return infra.WrapRepoErr("username taken", nil, infra.KindDuplicateKey)
		}
	}
	c := *rm
	c.UpdatedAt = time.Now().UTC()
	r.store.users[rm.ID] = &c
	if passwordHash != nil {
		r.store.passwords[rm.ID] = *passwordHash
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.users[id]; !ok {
		return notFound("user not found")
	}
	for _, res := range r.store.reservations {
		if res.UserID == id {
			return infra.WrapRepoErr("user has reservations", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.store.users, id)
	return nil
}

// Read-side views over the same store.

func (s *fakeStore) FindReservationByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&fakeReservationRepo{store: s}).FindByID(ctx, id)
}

type fakeReservationReads struct {
	store *fakeStore
}

func (r *fakeReservationReads) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	return r.store.FindReservationByID(ctx, id)
}

func (r *fakeReservationReads) List(_ context.Context, filter shared.ReservationFilter) ([]*readmodel.ReservationRM, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var all []*readmodel.ReservationRM
	for _, res := range r.store.reservations {
		if filter.CheckInFrom != nil && res.CheckInDate.Before(*filter.CheckInFrom) {
			continue
		}
		if filter.CheckInTo != nil && res.CheckInDate.After(*filter.CheckInTo) {
			continue
		}
		if filter.MinAmount != nil && res.TotalAmount < *filter.MinAmount {
			continue
		}
		if filter.MaxAmount != nil && res.TotalAmount > *filter.MaxAmount {
			continue
		}
		c := *res
		all = append(all, &c)
	}
	sortReservations(all)

	page := filter.Page.Normalize()
	return paginate(all, page), nil
}

func sortReservations(list []*readmodel.ReservationRM) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.CheckInDate.Equal(b.CheckInDate) {
			return a.CheckInDate.Before(b.CheckInDate)
		}
		return a.ID.String() < b.ID.String()
	})
}

func paginate[T any](all []T, page shared.Page) []T {
	start := int(page.Offset)
	if start >= len(all) {
		return nil
	}
	end := start + int(page.Limit)
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

type fakeHotelReads struct {
	store *fakeStore
}

func (r *fakeHotelReads) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&fakeHotelRepo{store: r.store}).FindByID(ctx, id)
}

func (r *fakeHotelReads) List(_ context.Context, page shared.Page) ([]*readmodel.HotelRM, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var all []*readmodel.HotelRM
	for _, h := range r.store.hotels {
		c := *h
		all = append(all, &c)
	}
	return paginate(all, page.Normalize()), nil
}

type fakeAuthReads struct {
	store *fakeStore
}

func (r *fakeAuthReads) FindByUsername(_ context.Context, username string) (*readmodel.UserRM, string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, u := range r.store.users {
		if u.Username == username {
			c := *u
			return &c, r.store.passwords[id], nil
		}
	}
	return nil, "", notFound("user not found")
}
