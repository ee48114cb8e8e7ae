package queries

import (
	"context"

	"bindrop/internal/domain/checkout"

	"github.com/jinzhu/copier"
)

type SessionReadStore interface {
	Do(id string, fn func(*checkout.Session) error) error
}

type CartQueries interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	sessions SessionReadStore
}

func NewCartQueries(sessions SessionReadStore) CartQueries {
	return &cartQueriesImpl{sessions: sessions}
}

func (q *cartQueriesImpl) GetCart(_ context.Context, sessionID string) (*CartView, error) {
	var view *CartView
	err := q.sessions.Do(sessionID, func(s *checkout.Session) error {
		items := make([]CartItemView, 0, s.Cart().Len())
		if err := copier.Copy(&items, s.Cart().Items()); err != nil {
			return err
		}
		view = &CartView{
			SessionID: s.ID(),
			Status:    s.Status().String(),
			Items:     items,
			Total:     s.Cart().Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
