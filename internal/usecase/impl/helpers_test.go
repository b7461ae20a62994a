package impl

import (
	"io"
	"log/slog"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func newPrincipal(role entity.Role) entity.Principal {
	return entity.Principal{UserID: uuid.New(), Role: role}
}
