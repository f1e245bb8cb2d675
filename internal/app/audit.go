package app

import (
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/views"
)

// Audit logs every published snapshot at debug level. The returned func
// detaches the listeners.
func Audit(logger *zap.Logger, stores Stores) func() {
	filmsSub := stores.Films.Subscribe(func(s state.Snapshot[entity.Film]) {
		logger.Debug("films published",
			zap.Uint64("version", s.Version),
			zap.Int("count", s.Len()),
			zap.Int("favorites", views.Count(views.Favorites(s))))
	})
	peopleSub := stores.People.Subscribe(func(s state.Snapshot[entity.Person]) {
		logger.Debug("people published",
			zap.Uint64("version", s.Version),
			zap.Int("count", s.Len()))
	})
	return func() {
		filmsSub.Unsubscribe()
		peopleSub.Unsubscribe()
	}
}
