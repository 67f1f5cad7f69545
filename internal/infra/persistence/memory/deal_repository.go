package memory

import (
	"context"
	"sort"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

type dealRepository struct {
	v view
}

func (repo *dealRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.DealRoom, error) {
	var (
		room  entity.DealRoom
		found bool
	)
	repo.v.read(func(d *dataset) {
		room, found = d.rooms[id]
		if found {
			room = cloneRoom(room)
		}
	})
	if !found {
		return nil, repository.ErrDealNotFound
	}

	return &room, nil
}

func (repo *dealRepository) FindByListingAndBuyer(_ context.Context, listingID, buyerID uuid.UUID) (*entity.DealRoom, error) {
	var (
		room  entity.DealRoom
		found bool
	)
	repo.v.read(func(d *dataset) {
		for _, r := range d.rooms {
			if r.ListingID == listingID && r.BuyerID == buyerID {
				room, found = cloneRoom(r), true

				return
			}
		}
	})
	if !found {
		return nil, repository.ErrDealNotFound
	}

	return &room, nil
}

func (repo *dealRepository) ListByParticipant(_ context.Context, userID uuid.UUID) ([]*entity.DealRoom, error) {
	rooms := make([]*entity.DealRoom, 0)
	repo.v.read(func(d *dataset) {
		for _, r := range d.rooms {
			if r.IsParticipant(userID) {
				room := cloneRoom(r)
				rooms = append(rooms, &room)
			}
		}
	})
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})

	return rooms, nil
}

func (repo *dealRepository) Create(_ context.Context, room *entity.DealRoom) error {
	return repo.v.write(func(d *dataset) error {
		for _, r := range d.rooms {
			if r.ListingID == room.ListingID && r.BuyerID == room.BuyerID {
				return domainerrors.ErrConflict.WrapMessage("deal room already exists for this buyer and listing")
			}
		}
		if _, ok := d.listings[room.ListingID]; !ok {
			return domainerrors.ErrListingNotFound.WrapMessage("deal room references an unknown listing")
		}

		if room.ID == uuid.Nil {
			room.ID = newID()
		}
		now := time.Now()
		room.CreatedAt = now
		room.UpdatedAt = now
		d.rooms[room.ID] = cloneRoom(*room)

		return nil
	})
}

func (repo *dealRepository) Update(_ context.Context, room *entity.DealRoom) error {
	return repo.v.write(func(d *dataset) error {
		stored, ok := d.rooms[room.ID]
		if !ok {
			return repository.ErrDealNotFound
		}
		stored.NDASignedAt = room.NDASignedAt
		stored.LOISubmittedAt = room.LOISubmittedAt
		stored.Status = room.Status
		stored.UpdatedAt = time.Now()
		d.rooms[room.ID] = cloneRoom(stored)
		room.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (repo *dealRepository) AddMessage(_ context.Context, message *entity.DealMessage) error {
	return repo.v.write(func(d *dataset) error {
		if _, ok := d.rooms[message.DealID]; !ok {
			return repository.ErrDealNotFound
		}
		if message.ID == uuid.Nil {
			message.ID = newID()
		}
		message.CreatedAt = time.Now()
		d.messages[message.DealID] = append(d.messages[message.DealID], *message)

		return nil
	})
}

func (repo *dealRepository) ListMessages(_ context.Context, dealID uuid.UUID) ([]*entity.DealMessage, error) {
	messages := make([]*entity.DealMessage, 0)
	repo.v.read(func(d *dataset) {
		for _, m := range d.messages[dealID] {
			msg := m
			messages = append(messages, &msg)
		}
	})

	return messages, nil
}

func (repo *dealRepository) CreateOffer(_ context.Context, offer *entity.Offer) error {
	return repo.v.write(func(d *dataset) error {
		if _, ok := d.rooms[offer.DealID]; !ok {
			return repository.ErrDealNotFound
		}
		if offer.ID == uuid.Nil {
			offer.ID = newID()
		}
		offer.CreatedAt = time.Now()
		d.offers[offer.DealID] = append(d.offers[offer.DealID], *offer)

		return nil
	})
}

func (repo *dealRepository) ListOffers(_ context.Context, dealID uuid.UUID) ([]*entity.Offer, error) {
	offers := make([]*entity.Offer, 0)
	repo.v.read(func(d *dataset) {
		for _, o := range d.offers[dealID] {
			offer := o
			offers = append(offers, &offer)
		}
	})

	return offers, nil
}

func (repo *dealRepository) Stats(_ context.Context, track entity.Track) (*entity.DealStats, error) {
	stats := &entity.DealStats{}
	repo.v.read(func(d *dataset) {
		for id, r := range d.rooms {
			listing, ok := d.listings[r.ListingID]
			if !ok || !matchesTrack(listing.Track, track) {
				continue
			}
			if r.NDASigned() {
				stats.NDAsSigned++
			}
			stats.OffersSubmitted += int64(len(d.offers[id]))
		}
	})

	return stats, nil
}
